// Package pipeline runs fetch, extract, parse and write in sequence.
package pipeline

import (
	"context"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/xishang0128/xliff-dumper/aggregator"
	"github.com/xishang0128/xliff-dumper/common/file"
	"github.com/xishang0128/xliff-dumper/config"
	"github.com/xishang0128/xliff-dumper/locator"
	"github.com/xishang0128/xliff-dumper/workspace"
)

// Result lists everything a run produced.
type Result struct {
	Containers     []string
	Downloaded     bool
	SourcePackages []string
	Localizations  []string
	Outputs        []aggregator.Output
	Exported       []string
}

// Runner holds the wired components of one run.
type Runner struct {
	cfg        config.Config
	workspace  *workspace.Workspace
	locator    *locator.Locator
	aggregator *aggregator.Aggregator
	logger     log.FieldLogger

	downloadProgress file.DownloadProgress
	extractProgress  locator.ProgressCallback
	keepArchive      bool
}

type Option func(*Runner)

func WithLogger(l log.FieldLogger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithDownloadProgress(cb file.DownloadProgress) Option {
	return func(r *Runner) {
		r.downloadProgress = cb
	}
}

func WithExtractProgress(cb locator.ProgressCallback) Option {
	return func(r *Runner) {
		r.extractProgress = cb
	}
}

// WithKeepArchive keeps an operator-supplied archive when cleaning up.
func WithKeepArchive(keep bool) Option {
	return func(r *Runner) {
		r.keepArchive = keep
	}
}

// New validates cfg and wires the components.
func New(cfg config.Config, opts ...Option) (*Runner, error) {
	patterns, err := cfg.Compile()
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:       cfg,
		workspace: workspace.New(cfg.WorkDir, cfg.TranslationsDir),
		logger:    log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.locator = locator.New(patterns,
		locator.WithLogger(r.logger),
		locator.WithProgress(r.extractProgress),
	)
	r.aggregator = aggregator.New(patterns, cfg.KnownLanguages, aggregator.WithLogger(r.logger))
	return r, nil
}

// Workspace returns the working directory layout of the run.
func (r *Runner) Workspace() *workspace.Workspace {
	return r.workspace
}

// Run executes the pipeline. With an empty localArchive the bundle is downloaded
// from the configured artifact URL first.
func (r *Runner) Run(ctx context.Context, localArchive string) (*Result, error) {
	if err := r.workspace.Create(); err != nil {
		return nil, err
	}

	res := &Result{}
	if localArchive == "" {
		path, err := r.fetch(ctx)
		if err != nil {
			return nil, err
		}
		res.Containers = []string{path}
		res.Downloaded = true
	} else {
		res.Containers = []string{localArchive}
	}

	r.logger.Info("Extracting files")
	packages, err := r.locator.ExtractSourcePackages(res.Containers, r.workspace.Root)
	if err != nil {
		return res, err
	}
	res.SourcePackages = packages

	files, err := r.locator.ExtractLocalizations(packages, r.workspace.Root, r.workspace.Translations)
	if err != nil {
		return res, err
	}
	res.Localizations = files

	outputs, err := r.aggregator.ProcessDir(r.workspace.Translations)
	if err != nil {
		return res, err
	}
	res.Outputs = outputs

	if r.cfg.OutputDir != "" {
		exported, err := export(outputs, r.cfg.OutputDir)
		res.Exported = exported
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

func (r *Runner) fetch(ctx context.Context) (string, error) {
	url := r.cfg.ArtifactURL()
	dest := filepath.Join(r.cfg.DownloadDir, file.DownloadName(url))
	r.logger.WithField("url", url).Info("Downloading file")

	err := file.Download(ctx, url, dest, file.DownloadOptions{
		ChunkSize: r.cfg.ChunkSize,
		Progress:  r.downloadProgress,
	})
	if err != nil {
		return "", err
	}
	return dest, nil
}

// Finish removes the containers and the working directory when cleanup is true.
func (r *Runner) Finish(res *Result, cleanup bool) error {
	if !cleanup {
		r.logger.WithField("dir", r.workspace.Root).Info("Keeping working files")
		return nil
	}

	var files []string
	if res != nil && (res.Downloaded || !r.keepArchive) {
		files = res.Containers
	}
	r.logger.WithFields(log.Fields{"files": files, "dir": r.workspace.Root}).Info("Cleaning up")
	return workspace.Cleanup(files, []string{r.workspace.Root})
}
