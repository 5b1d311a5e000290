package gen

import (
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/goccy/go-yaml"
)

// DefaultLocale is the locale loaded when none is requested.
const DefaultLocale = "en"

//go:embed data/*.yaml
var localeFS embed.FS

// dataset is the decoded form of one embedded locale table.
type dataset struct {
	Airline struct {
		Airlines  []map[string]any `yaml:"airlines"`
		Airplanes []map[string]any `yaml:"airplanes"`
	} `yaml:"airline"`

	Person struct {
		FirstNames []string `yaml:"firstNames"`
		LastNames  []string `yaml:"lastNames"`
	} `yaml:"person"`

	Location struct {
		Cities         []string `yaml:"cities"`
		Countries      []string `yaml:"countries"`
		StreetSuffixes []string `yaml:"streetSuffixes"`
	} `yaml:"location"`

	Internet struct {
		DomainSuffixes   []string `yaml:"domainSuffixes"`
		FreeEmailDomains []string `yaml:"freeEmailDomains"`
	} `yaml:"internet"`

	Word struct {
		Adjectives []string `yaml:"adjectives"`
		Nouns      []string `yaml:"nouns"`
	} `yaml:"word"`
}

//nolint:gochecknoglobals
var (
	datasetMu    sync.Mutex
	datasetCache = map[string]*dataset{}
)

// loadDataset decodes the embedded table for the given locale, caching the
// result per process. Embedded tables are fixed at build time, so a decode
// failure is a programming error.
func loadDataset(locale string) (*dataset, error) {
	datasetMu.Lock()
	defer datasetMu.Unlock()

	if d, ok := datasetCache[locale]; ok {
		return d, nil
	}

	raw, err := localeFS.ReadFile("data/" + locale + ".yaml")
	if err != nil {
		return nil, ErrUnknownLocale.
			With(slog.String("locale", locale)).
			Wrap(err)
	}

	d := new(dataset)

	err = yaml.Unmarshal(raw, d)
	if err != nil {
		panic(fmt.Sprintf("gen: embedded locale %q is malformed: %v",
			locale, err))
	}

	datasetCache[locale] = d

	return d, nil
}
