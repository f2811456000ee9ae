// Package config holds the immutable run configuration shared by the locator,
// the aggregator and the CLI.
package config

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/xishang0128/xliff-dumper/constant"
)

// Config describes one run. It is a value type; after Compile nothing mutates it.
type Config struct {
	AppVersion       string `yaml:"app_version"`
	ArtifactsBaseURL string `yaml:"artifacts_base_url"`
	Country          string `yaml:"country"`

	WorkDir         string `yaml:"work_dir"`
	TranslationsDir string `yaml:"translations_dir"`
	DownloadDir     string `yaml:"download_dir"`
	OutputDir       string `yaml:"output_dir"`

	ChunkSize   int           `yaml:"chunk_size"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	UserAgent   string        `yaml:"user_agent"`

	SourcePackagePattern string `yaml:"source_package_pattern"`
	LocalizationPattern  string `yaml:"localization_pattern"`
	CaptionPattern       string `yaml:"caption_pattern"`

	KnownLanguages []string `yaml:"known_languages"`
}

// Patterns are the compiled member and unit-id predicates of a Config.
type Patterns struct {
	SourcePackage *regexp.Regexp
	Localization  *regexp.Regexp
	Caption       *regexp.Regexp
}

var defaultKnownLanguages = []string{
	"cs-cz",
	"da-dk",
	"de-at",
	"de-ch",
	"de-de",
	"en-au",
	"en-ca",
	"en-gb",
	"en-nz",
	"en-us",
	"es-es_tradnl",
	"es-mx",
	"fi-fi",
	"fr-be",
	"fr-ca",
	"fr-ch",
	"fr-fr",
	"is-is",
	"it-ch",
	"it-it",
	"nb-no",
	"nl-be",
	"nl-nl",
	"ru-ru",
	"sv-se",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AppVersion:       "18.0.23013.23795",
		ArtifactsBaseURL: "https://bcartifacts.azureedge.net/onprem",
		Country:          "se",

		WorkDir:         "tmp",
		TranslationsDir: "Translations",
		DownloadDir:     ".",

		ChunkSize: 8192,
		UserAgent: "xliff-dumper/" + constant.Version,

		// Member paths are matched with forward slashes only; see ziputil.Normalize.
		SourcePackagePattern: `(?i)^Applications/BaseApp/Source/.* language \(.*\)\.Source\.zip`,
		LocalizationPattern:  `(?i)^.*Base Application\.[a-z]{2}-[A-Z]{2}\.xlf`,
		CaptionPattern:       `^Table \d* - Field \d* - Property 2879900210`,

		KnownLanguages: append([]string(nil), defaultKnownLanguages...),
	}
}

// Load overlays the YAML file at path onto Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// ArtifactURL is the download location of the bundle for AppVersion and Country.
func (c Config) ArtifactURL() string {
	return strings.TrimRight(c.ArtifactsBaseURL, "/") + "/" + c.AppVersion + "/" + c.Country
}

// Validate checks the fields that have no usable zero value.
func (c Config) Validate() error {
	switch {
	case c.WorkDir == "":
		return errors.New("work_dir must not be empty")
	case c.TranslationsDir == "":
		return errors.New("translations_dir must not be empty")
	case c.ChunkSize <= 0:
		return errors.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	case c.HTTPTimeout < 0:
		return errors.Errorf("http_timeout must not be negative, got %s", c.HTTPTimeout)
	}
	return nil
}

// Compile validates c and compiles its patterns.
func (c Config) Compile() (*Patterns, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var p Patterns
	for _, item := range []struct {
		name string
		expr string
		dst  **regexp.Regexp
	}{
		{"source_package_pattern", c.SourcePackagePattern, &p.SourcePackage},
		{"localization_pattern", c.LocalizationPattern, &p.Localization},
		{"caption_pattern", c.CaptionPattern, &p.Caption},
	} {
		if item.expr == "" {
			return nil, errors.Errorf("%s must not be empty", item.name)
		}
		re, err := regexp.Compile(item.expr)
		if err != nil {
			return nil, errors.Wrapf(err, "compile %s", item.name)
		}
		*item.dst = re
	}
	return &p, nil
}
