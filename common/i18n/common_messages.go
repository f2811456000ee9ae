package i18n

// CommonMessages holds common translatable strings
type CommonMessages struct {
	// Error messages
	ErrorFailedToOpen        string
	ErrorFailedToLoadConfig  string
	ErrorFailedToMarshalJSON string
	ErrorInvalidLogLevel     string

	// Common flag descriptions
	FlagUserAgent string
	FlagConfig    string
	FlagLogLevel  string
	FlagJSON      string
	ElapsedTime   string
}

// English common messages
var EnglishCommonMessages = CommonMessages{
	ErrorFailedToOpen:        "Failed to open bundle: %+v",
	ErrorFailedToLoadConfig:  "Failed to load configuration: %+v",
	ErrorFailedToMarshalJSON: "Failed to marshal JSON: %v",
	ErrorInvalidLogLevel:     "Invalid log level %q: %v",

	FlagUserAgent: "User-Agent header for HTTP requests",
	FlagConfig:    "YAML configuration file",
	FlagLogLevel:  "log level (debug, info, warn, error)",
	FlagJSON:      "output as JSON",
	ElapsedTime:   "Elapsed time: %s",
}

// Chinese common messages
var ChineseCommonMessages = CommonMessages{
	ErrorFailedToOpen:        "无法打开制品包: %+v",
	ErrorFailedToLoadConfig:  "无法加载配置: %+v",
	ErrorFailedToMarshalJSON: "无法序列化JSON: %v",
	ErrorInvalidLogLevel:     "无效的日志级别 %q: %v",

	FlagUserAgent: "HTTP 请求使用的 User-Agent",
	FlagConfig:    "YAML 配置文件",
	FlagLogLevel:  "日志级别 (debug, info, warn, error)",
	FlagJSON:      "以JSON格式输出",
	ElapsedTime:   "耗时: %s",
}
