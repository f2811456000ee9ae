package main

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/xishang0128/xliff-dumper/common/i18n"
	"github.com/xishang0128/xliff-dumper/locator"
)

// progressBars renders pipeline callbacks with mpb.
type progressBars struct {
	progress *mpb.Progress

	mu            sync.Mutex
	downloadBar   *mpb.Bar
	downloadKnown bool
	extractBars   map[string]*mpb.Bar
}

func newProgressBars() *progressBars {
	return &progressBars{
		progress:    mpb.New(mpb.WithWidth(60)),
		extractBars: make(map[string]*mpb.Bar),
	}
}

func (p *progressBars) download(written, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.downloadBar == nil {
		p.downloadKnown = total > 0
		if !p.downloadKnown {
			total = 0
		}
		p.downloadBar = p.progress.AddBar(total,
			mpb.PrependDecorators(
				decor.Name(fmt.Sprintf("[%s]", i18n.I18nMsg.Run.DownloadBar), decor.WCSyncSpaceR),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WC{W: 5}),
				decor.CountersKibiByte(" | % .2f / % .2f"),
				decor.AverageSpeed(decor.SizeB1024(0), " | % .2f"),
			),
		)
	}
	if !p.downloadKnown {
		p.downloadBar.SetTotal(written+1, false)
	}
	p.downloadBar.SetCurrent(written)
}

func (p *progressBars) extract(pi locator.ProgressInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := string(pi.Stage) + "|" + pi.Archive
	bar, ok := p.extractBars[key]
	if !ok {
		if pi.Total == 0 {
			return
		}
		desc := fmt.Sprintf("[%s](%s)", i18n.I18nMsg.Run.ExtractBar, filepath.Base(pi.Archive))
		bar = p.progress.AddBar(int64(pi.Total),
			mpb.PrependDecorators(
				decor.Name(desc, decor.WCSyncSpaceR),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WC{W: 5}),
				decor.CountersNoUnit(" | %d/%d"),
			),
		)
		p.extractBars[key] = bar
	}
	bar.SetCurrent(int64(pi.Completed))
}

// wait completes or aborts every bar so the renderer can stop, then waits for it.
func (p *progressBars) wait() {
	p.mu.Lock()
	if p.downloadBar != nil && !p.downloadKnown {
		p.downloadBar.SetTotal(-1, true)
	}
	bars := make([]*mpb.Bar, 0, len(p.extractBars)+1)
	if p.downloadBar != nil {
		bars = append(bars, p.downloadBar)
	}
	for _, bar := range p.extractBars {
		bars = append(bars, bar)
	}
	p.mu.Unlock()

	for _, bar := range bars {
		if !bar.Completed() {
			bar.Abort(false)
		}
	}
	p.progress.Wait()
}
