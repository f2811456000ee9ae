package locator

import "github.com/dustin/go-humanize"

// Member describes a selected container member.
type Member struct {
	Name         string `json:"name"`
	Size         uint64 `json:"size"`
	SizeReadable string `json:"size_readable"`
}

// Stage identifies which extraction pass a ProgressInfo belongs to.
type Stage string

const (
	StageSourcePackages Stage = "source-packages"
	StageLocalizations  Stage = "localizations"
)

// ProgressInfo represents progress information for extraction
type ProgressInfo struct {
	Stage     Stage  `json:"stage"`
	Archive   string `json:"archive"`
	Member    string `json:"member"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
}

// ProgressCallback is a function type for receiving progress updates
type ProgressCallback func(progress ProgressInfo)

func formatSize(bytes uint64) string {
	return humanize.IBytes(bytes)
}
