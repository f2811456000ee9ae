// Package aggregator turns localization files into per-language JSON dictionaries.
package aggregator

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/xishang0128/xliff-dumper/config"
	"github.com/xishang0128/xliff-dumper/xliff"
)

// Record is the merged dictionary of one localization file.
type Record struct {
	Language string
	Entries  *Mapping
}

// Output describes one written dictionary.
type Output struct {
	Source   string `json:"source"`
	Path     string `json:"path"`
	Language string `json:"language"`
	Known    bool   `json:"known"`
	Keys     int    `json:"keys"`
}

// Aggregator merges translation units and writes the dictionaries.
type Aggregator struct {
	caption *regexp.Regexp
	known   map[string]struct{}
	logger  log.FieldLogger
}

type Option func(*Aggregator)

func WithLogger(l log.FieldLogger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// New builds an Aggregator. Caption unit ids are recognized with p.Caption; known
// is the advisory language allow-list.
func New(p *config.Patterns, known []string, opts ...Option) *Aggregator {
	a := &Aggregator{
		caption: p.Caption,
		known:   make(map[string]struct{}, len(known)),
		logger:  log.StandardLogger(),
	}
	for _, code := range known {
		a.known[strings.ToLower(code)] = struct{}{}
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate builds the general (source → targets) and caption (unit id → targets) mappings.
func (a *Aggregator) Aggregate(units []xliff.Unit) (general, caption *Mapping) {
	general, caption = NewMapping(), NewMapping()
	for _, u := range units {
		general.Add(u.Source, u.Target)
		if a.caption.MatchString(u.ID) {
			caption.Add(u.ID, u.Target)
		}
	}
	return general, caption
}

// ProcessFile parses one localization file into a Record.
func (a *Aggregator) ProcessFile(path string) (*Record, error) {
	doc, err := xliff.ReadFile(path)
	if err != nil {
		return nil, err
	}
	general, caption := a.Aggregate(doc.Units)
	return &Record{
		Language: doc.TargetLanguage,
		Entries:  Merge(general, caption),
	}, nil
}

// IsKnown reports whether code is on the allow-list.
func (a *Aggregator) IsKnown(code string) bool {
	_, ok := a.known[strings.ToLower(code)]
	return ok
}

// ProcessDir handles every *.xlf file in dir in lexicographic order and writes
// <dir>/<language>.json for each. The first error aborts the run.
func (a *Aggregator) ProcessDir(dir string) ([]Output, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".xlf") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	outputs := make([]Output, 0, len(names))
	for _, name := range names {
		src := filepath.Join(dir, name)
		a.logger.WithField("file", name).Info("Parsing")

		rec, err := a.ProcessFile(src)
		if err != nil {
			return outputs, err
		}

		known := a.IsKnown(rec.Language)
		if !known {
			a.warnUnknown(rec.Language)
		}

		dest := filepath.Join(dir, strings.ToLower(rec.Language)+".json")
		if err := WriteRecord(dest, rec); err != nil {
			return outputs, err
		}
		outputs = append(outputs, Output{
			Source:   src,
			Path:     dest,
			Language: rec.Language,
			Known:    known,
			Keys:     rec.Entries.Len(),
		})
	}
	return outputs, nil
}

func (a *Aggregator) warnUnknown(code string) {
	fields := log.Fields{"language": code}
	if tag, err := language.Parse(code); err == nil {
		if name := display.English.Tags().Name(tag); name != "" {
			fields["name"] = name
		}
	}
	a.logger.WithFields(fields).Warnf("New language: %s. Make sure to update affected files e.g BaseAppTranslationFiles.ts", code)
}

// WriteRecord writes rec.Entries as one JSON object in the MarshalJSON layout.
// The bytes are written as is; a json.Encoder would compact them.
func WriteRecord(path string, rec *Record) error {
	data, err := rec.Entries.MarshalJSON()
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.WithStack(os.WriteFile(path, data, 0644))
}
