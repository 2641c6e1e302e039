package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the file name of the shell configuration.
	ConfigurationName = "config.yaml"

	// DefaultPrompt is used when the configuration doesn't set a prompt.
	DefaultPrompt = `\$ `

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Configuration holds the user-tunable shell settings.
type Configuration struct {
	// Prompt is a PS1-style template: \u user, \h hostname, \w working
	// directory (with ~ contraction) and \$ the prompt character.
	Prompt string `json:"prompt"`

	Color string `json:"color" validate:"oneof=auto always never"`

	// HistoryFile is the append-only command history log.
	HistoryFile string `json:"history_file" validate:"required"`

	// HistoryLimit caps in-session history recall.
	HistoryLimit int `json:"history_limit" validate:"gte=0"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
