package i18n

// RunMessages holds translatable strings of the root (dump) command
type RunMessages struct {
	Use string

	FlagAppVersion  string
	FlagCountry     string
	FlagBaseURL     string
	FlagWorkDir     string
	FlagOut         string
	FlagYes         string
	FlagNoCleanup   string
	FlagKeepArchive string
	FlagNoProgress  string

	ErrorFailedToRun     string
	ErrorFailedToCleanUp string
	ErrorFailedToConfirm string

	DownloadBar      string
	ExtractBar       string
	Completed        string
	DictionaryLine   string
	NewLanguage      string
	Exported         string
	CleanupPrompt    string
	CleanupCompleted string
	CleanupSkipped   string
}

// English run messages
var EnglishRunMessages = RunMessages{
	Use: "xliff-dumper [local-archive-path]",

	FlagAppVersion:  "application version of the artifact bundle",
	FlagCountry:     "country code of the artifact bundle",
	FlagBaseURL:     "base URL of the artifact store",
	FlagWorkDir:     "working directory for extracted data",
	FlagOut:         "also copy the dictionaries to this directory",
	FlagYes:         "clean up without asking",
	FlagNoCleanup:   "never clean up and do not ask",
	FlagKeepArchive: "keep a local archive passed as argument when cleaning up",
	FlagNoProgress:  "disable progress bars",

	ErrorFailedToRun:     "Failed: %+v",
	ErrorFailedToCleanUp: "Failed to clean up: %+v",
	ErrorFailedToConfirm: "Failed to read answer: %+v",

	DownloadBar:      "download",
	ExtractBar:       "extract",
	Completed:        "Completed: %d dictionaries written",
	DictionaryLine:   "  %-14s %6d keys  %s",
	NewLanguage:      "  new language: %s",
	Exported:         "Copied to %s",
	CleanupPrompt:    "Completed. Continue with clean up?",
	CleanupCompleted: "Cleaned up working files",
	CleanupSkipped:   "Working files kept in %s",
}

// Chinese run messages
var ChineseRunMessages = RunMessages{
	Use: "xliff-dumper [本地制品包路径]",

	FlagAppVersion:  "制品包的应用版本",
	FlagCountry:     "制品包的国家代码",
	FlagBaseURL:     "制品仓库的基础 URL",
	FlagWorkDir:     "解压数据的工作目录",
	FlagOut:         "同时将字典复制到该目录",
	FlagYes:         "不询问直接清理",
	FlagNoCleanup:   "不清理且不询问",
	FlagKeepArchive: "清理时保留作为参数传入的本地制品包",
	FlagNoProgress:  "禁用进度条",

	ErrorFailedToRun:     "失败: %+v",
	ErrorFailedToCleanUp: "清理失败: %+v",
	ErrorFailedToConfirm: "无法读取回答: %+v",

	DownloadBar:      "下载",
	ExtractBar:       "解压",
	Completed:        "完成: 已写入 %d 个字典",
	DictionaryLine:   "  %-14s %6d 条  %s",
	NewLanguage:      "  新语言: %s",
	Exported:         "已复制到 %s",
	CleanupPrompt:    "已完成。是否继续清理?",
	CleanupCompleted: "已清理工作文件",
	CleanupSkipped:   "工作文件保留在 %s",
}
