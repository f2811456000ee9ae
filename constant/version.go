package constant

// Set at build time with -ldflags "-X github.com/xishang0128/xliff-dumper/constant.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
)
