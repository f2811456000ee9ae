package i18n

// ListMessages holds list command translatable strings
type ListMessages struct {
	Use   string
	Short string
	Long  string

	ErrorFailedToList string
	TotalPackages     string
}

// English list messages
var EnglishListMessages = ListMessages{
	Use:   "list [bundle URL/path]",
	Short: "List language source packages in a bundle",
	Long: `List the nested language source packages of an artifact bundle.

Remote bundles are read with HTTP range requests, without downloading them.`,

	ErrorFailedToList: "Failed to list source packages: %+v",
	TotalPackages:     "Total %d source packages",
}

// Chinese list messages
var ChineseListMessages = ListMessages{
	Use:   "list [制品包链接/路径]",
	Short: "列出制品包中的语言源码包",
	Long: `列出制品包中嵌套的语言源码包。

远程制品包通过 HTTP 范围请求读取，无需完整下载。`,

	ErrorFailedToList: "无法列出源码包: %+v",
	TotalPackages:     "共 %d 个源码包",
}
