package config

import "github.com/caarlos0/env/v11"

// Config holds process settings read from the environment. Command-line
// flags take precedence over these values.
type Config struct {
	GithubToken  string `env:"GITHUB_TOKEN"`
	SettingsPath string `env:"WORKFLOW_LINTER_SETTINGS" envDefault:"settings.yaml"`
	LogLevel     string `env:"WORKFLOW_LINTER_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"WORKFLOW_LINTER_LOG_FORMAT" envDefault:"text"`
	// Strict makes warnings fail the run as well as errors.
	Strict bool `env:"WORKFLOW_LINTER_STRICT"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
