// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration shared by the CLI and the
// internal packages. Field names follow the command-line flag names so that
// flags, environment variables and the config file all bind to the same keys.
package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// HTTPConfig holds HTTP client settings.
type HTTPConfig struct {
	// Timeout is the whole-request timeout. Zero means no timeout.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string `mapstructure:"user-agent" yaml:"user-agent"`

	// BaseURL is the API host, e.g. "https://api.stackexchange.com".
	BaseURL string `mapstructure:"api-url" yaml:"api-url" validate:"required,url"`
}

// SearchConfig holds the query sent to the search route.
type SearchConfig struct {
	HTTPConfig `mapstructure:",squash" yaml:",inline"`

	Site    string `mapstructure:"site" yaml:"site" validate:"required"`
	Min     string `mapstructure:"min" yaml:"min"`
	Sort    string `mapstructure:"sort" yaml:"sort" validate:"oneof=activity creation votes relevance"`
	Order   string `mapstructure:"order" yaml:"order" validate:"oneof=desc asc"`
	InTitle string `mapstructure:"intitle" yaml:"intitle"`

	// PageSize is the number of items per page. Zero leaves it to the API.
	PageSize int `mapstructure:"pagesize" yaml:"pagesize" validate:"min=0,max=100"`

	// Key is a Stack Exchange app key.
	Key string `mapstructure:"key" yaml:"key,omitempty"`

	// PrintRequestURLs echoes each request URL to stderr.
	PrintRequestURLs bool `mapstructure:"print-request-urls" yaml:"print-request-urls"`
}

// OutputConfig controls CSV output.
type OutputConfig struct {
	// Fields are the record fields written as columns; "all" writes every field.
	Fields []string `mapstructure:"csv-fields" yaml:"csv-fields" validate:"min=1,dive,required"`

	// Dialect is one of excel, excel-tab or unix.
	Dialect string `mapstructure:"csv-dialect" yaml:"csv-dialect" validate:"oneof=excel excel-tab unix"`

	// Header writes a header row before the first record.
	Header bool `mapstructure:"header" yaml:"header"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level  string `mapstructure:"log-level" yaml:"log-level" validate:"oneof=debug info warn error"`
	Pretty bool   `mapstructure:"log-pretty" yaml:"log-pretty"`
}

// Config is the complete configuration of one run.
type Config struct {
	Search SearchConfig `mapstructure:",squash" yaml:",inline"`
	Output OutputConfig `mapstructure:",squash" yaml:",inline"`
	Log    LogConfig    `mapstructure:",squash" yaml:",inline"`

	// Pages is the page range in START[-][STOP] form.
	Pages string `mapstructure:"pages" yaml:"pages" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints. The page range syntax is checked by
// the pages package.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
