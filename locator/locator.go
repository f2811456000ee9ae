// Package locator finds the nested language source packages inside an artifact
// bundle and the localization files inside those packages.
package locator

import (
	"archive/zip"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/xishang0128/xliff-dumper/common/file"
	"github.com/xishang0128/xliff-dumper/common/ziputil"
	"github.com/xishang0128/xliff-dumper/config"
)

// Locator selects members with the predicates compiled from the configuration.
type Locator struct {
	sourcePackage ziputil.MatchFunc
	localization  ziputil.MatchFunc
	logger        log.FieldLogger
	progress      ProgressCallback
}

type Option func(*Locator)

func WithLogger(l log.FieldLogger) Option {
	return func(loc *Locator) {
		if l != nil {
			loc.logger = l
		}
	}
}

func WithProgress(cb ProgressCallback) Option {
	return func(loc *Locator) {
		loc.progress = cb
	}
}

// New creates a Locator matching source packages and localization files with p.
func New(p *config.Patterns, opts ...Option) *Locator {
	loc := &Locator{
		sourcePackage: ziputil.Pattern(p.SourcePackage),
		localization:  ziputil.Pattern(p.Localization),
		logger:        log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(loc)
	}
	return loc
}

// ListSourcePackages returns the source packages in the container read by r.
// The container is not closed.
func (l *Locator) ListSourcePackages(r file.Reader) ([]Member, error) {
	a, err := ziputil.New(r)
	if err != nil {
		return nil, err
	}
	var members []Member
	for _, f := range a.Select(l.sourcePackage) {
		members = append(members, Member{
			Name:         f.Name,
			Size:         f.UncompressedSize64,
			SizeReadable: formatSize(f.UncompressedSize64),
		})
	}
	return members, nil
}

// ExtractSourcePackages extracts the source packages of every container below
// workDir, keeping their internal paths, and returns those paths relative to
// workDir. No match is not an error.
func (l *Locator) ExtractSourcePackages(containers []string, workDir string) ([]string, error) {
	var packages []string
	for _, c := range containers {
		extracted, err := l.extractEach(StageSourcePackages, c, l.sourcePackage, func(a *ziputil.Archive, f *zip.File) (string, error) {
			l.logger.WithFields(log.Fields{"container": c, "member": f.Name}).Info("Found source package")
			return a.Extract(f, workDir)
		})
		if err != nil {
			return packages, err
		}
		packages = append(packages, extracted...)
	}
	if len(packages) == 0 {
		l.logger.WithField("containers", containers).Info("No language source packages found")
	}
	return packages, nil
}

// ExtractLocalizations extracts the localization files of every package (relative
// to workDir) flatly into xlfDir and returns the written paths, each once. A file
// whose name was already extracted from an earlier member replaces it.
func (l *Locator) ExtractLocalizations(packages []string, workDir, xlfDir string) ([]string, error) {
	var files []string
	seen := make(map[string]string)
	for _, p := range packages {
		_, err := l.extractEach(StageLocalizations, filepath.Join(workDir, p), l.localization, func(a *ziputil.Archive, f *zip.File) (string, error) {
			fields := log.Fields{"container": p, "member": f.Name}
			l.logger.WithFields(fields).Debug("Extracting localization file")
			dest, err := a.ExtractFlat(f, xlfDir)
			if err != nil {
				return dest, err
			}
			if prev, ok := seen[dest]; ok {
				fields["previous"] = prev
				l.logger.WithFields(fields).Warnf("Overwriting localization file %q", filepath.Base(dest))
			} else {
				files = append(files, dest)
			}
			seen[dest] = p
			return dest, nil
		})
		if err != nil {
			return files, err
		}
	}
	return files, nil
}
