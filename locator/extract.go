package locator

import (
	"archive/zip"

	"github.com/xishang0128/xliff-dumper/common/ziputil"
)

type extractFunc func(a *ziputil.Archive, f *zip.File) (string, error)

// extractEach opens container, selects members with match and hands each to fn,
// reporting progress per member.
func (l *Locator) extractEach(stage Stage, container string, match ziputil.MatchFunc, fn extractFunc) ([]string, error) {
	a, err := ziputil.Open(container)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	l.logger.Infof("Extracting: %q", a.Name())

	selected := a.Select(match)
	out := make([]string, 0, len(selected))
	l.report(ProgressInfo{Stage: stage, Archive: container, Total: len(selected)})
	for i, f := range selected {
		p, err := fn(a, f)
		if err != nil {
			return out, err
		}
		out = append(out, p)
		l.report(ProgressInfo{
			Stage:     stage,
			Archive:   container,
			Member:    f.Name,
			Total:     len(selected),
			Completed: i + 1,
		})
	}
	return out, nil
}

func (l *Locator) report(pi ProgressInfo) {
	if l.progress != nil {
		l.progress(pi)
	}
}
