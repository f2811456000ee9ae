package i18n

// AppMessages holds application-level translatable strings
type AppMessages struct {
	AppDescription     string
	AppLongDescription string

	// Version command messages
	VersionTitle    string
	VersionLabel    string
	GoVersionLabel  string
	PlatformLabel   string
	VersionCmdShort string
	VersionCmdLong  string
}

// English app messages
var EnglishAppMessages = AppMessages{
	AppDescription: "Business Central XLIFF translation dumper",
	AppLongDescription: `Download a Business Central artifact bundle and dump its
Base Application translations as one JSON dictionary per language.

Pass a local bundle path to skip the download. Dictionaries are written to
<work-dir>/Translations/<language>.json.`,

	VersionTitle:    "xliff-dumper",
	VersionLabel:    "Version",
	GoVersionLabel:  "Go Version",
	PlatformLabel:   "Platform",
	VersionCmdShort: "Show version information",
	VersionCmdLong:  "Display version, build time, Go version and platform",
}

// Chinese app messages
var ChineseAppMessages = AppMessages{
	AppDescription: "Business Central XLIFF 翻译提取工具",
	AppLongDescription: `下载 Business Central 制品包，并将其中 Base Application 的翻译
按语言导出为 JSON 字典。

传入本地制品包路径可跳过下载。字典写入
<work-dir>/Translations/<语言>.json。`,

	VersionTitle:    "xliff-dumper",
	VersionLabel:    "版本",
	GoVersionLabel:  "Go 版本",
	PlatformLabel:   "平台",
	VersionCmdShort: "显示版本信息",
	VersionCmdLong:  "显示版本、构建时间、Go 版本与平台信息",
}
