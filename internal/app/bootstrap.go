package app

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"scaffolddemo/internal/config"
	"scaffolddemo/internal/i18n"
	"scaffolddemo/pkg/logging"
)

// Application is the main application structure that bootstraps and runs scaffolddemo
type Application struct {
	config *Config
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Stdout carries replay output, so CLI logging goes to stderr.
	logging.InitForCLI(appLogLevel, cfg.Stderr)

	var demoCfg config.DemoConfig
	var err error

	if cfg.ConfigPath != "" {
		demoCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		demoCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.applyOverrides(&demoCfg)
	if err := demoCfg.Validate(); err != nil {
		logging.Error("Bootstrap", err, "Invalid configuration")
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := i18n.Init(demoCfg.GlobalSettings.Locale); err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize translations")
		return nil, fmt.Errorf("failed to initialize translations: %w", err)
	}
	if locale := i18n.Current(); !hasTranslations(locale) {
		logging.Warn("Bootstrap", "No translations for locale %s, showing English", locale)
	} else {
		logging.Debug("Bootstrap", "Using locale %s", locale)
	}

	cfg.DemoConfig = &demoCfg

	return &Application{
		config: cfg,
	}, nil
}

// hasTranslations reports whether a message file exists for tag's language.
func hasTranslations(tag language.Tag) bool {
	base, _ := tag.Base()
	for _, available := range i18n.Languages() {
		if b, _ := available.Base(); b == base {
			return true
		}
	}
	return false
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return runCLIMode(ctx, a.config)
	}
	return runTUIMode(ctx, a.config)
}
