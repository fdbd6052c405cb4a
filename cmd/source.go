package cmd

import (
	"time"

	"github.com/spf13/pflag"

	"dora-styles/internal/fetcher"
	"dora-styles/internal/logger"
	"dora-styles/internal/source"
)

// sourceFlags selects where style content comes from. Shared by init and add.
type sourceFlags struct {
	kind       string
	library    string
	catalogURL string
	timeout    time.Duration
}

func (f *sourceFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.kind, "source", string(source.DefaultKind), "Where styles come from: catalog or library")
	fs.StringVar(&f.library, "library", "", "Style library directory or archive (implies --source library)")
	fs.StringVar(&f.catalogURL, "catalog-url", source.DefaultCatalogURL, "Base URL of the remote style catalog")
	fs.DurationVar(&f.timeout, "timeout", fetcher.DefaultTimeout, "Timeout for each catalog download (0 disables)")
}

// build returns the configured StyleSource and a function releasing it.
func (f *sourceFlags) build(fs *pflag.FlagSet) (source.StyleSource, func(), error) {
	kind, err := source.ParseKind(f.kind)
	if err != nil {
		return nil, nil, err
	}
	if f.library != "" && !fs.Changed("source") {
		kind = source.KindLibrary
	}

	if kind == source.KindCatalog {
		logger.Debug("Using style catalog %s\n", f.catalogURL)
		return source.NewCatalog(f.catalogURL, fetcher.New(f.timeout)), func() {}, nil
	}

	lib, err := f.openLibrary()
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Using %s\n", lib.Describe())
	return lib, func() {
		if err := lib.Close(); err != nil {
			logger.Warn("Failed to clean up %s: %v\n", lib.Describe(), err)
		}
	}, nil
}

func (f *sourceFlags) openLibrary() (*source.Library, error) {
	if f.library == "" {
		return source.Embedded(), nil
	}
	return source.OpenLibrary(f.library)
}
