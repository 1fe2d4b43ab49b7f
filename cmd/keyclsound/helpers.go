package main

import (
	"fmt"

	"github.com/optionallybluestudios/keycl/internal/config"
	"github.com/optionallybluestudios/keycl/internal/http"
	"github.com/optionallybluestudios/keycl/internal/library"
)

// commandContext carries lazily loaded state shared across subcommands.
type commandContext struct {
	configFlag *string
	settings   *config.Settings
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensureSettings loads the settings file once and caches it. Without a
// --config flag the default location is used, and a missing file yields
// the defaults.
func (ctx *commandContext) ensureSettings() (*config.Settings, error) {
	if ctx.settings != nil {
		return ctx.settings, nil
	}

	path := config.DefaultSettingsPath()
	if ctx.configFlag != nil && *ctx.configFlag != "" {
		path = *ctx.configFlag
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading settings from %s: %w", path, err)
	}

	ctx.settings = settings
	return settings, nil
}

// newBrowser builds a library browser from the configured listing
// endpoint.
func (ctx *commandContext) newBrowser() (*library.Browser, error) {
	settings, err := ctx.ensureSettings()
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient()
	listClient := library.NewClient(settings.LibraryAPI, httpClient)
	return library.NewBrowser(listClient, httpClient, settings.MaxConcurrentFetches), nil
}
