// Package config holds the prefbuilder configuration: the signature to work
// over, the contiguity mode, the default output format and logging options.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/worldpref/parser"
	"github.com/katalvlaran/worldpref/preference"
	"github.com/katalvlaran/worldpref/signature"
)

// FileName is the config file base name looked up in the working directory.
const FileName = ".prefbuilder"

// EnvPrefix prefixes environment overrides (PREFBUILDER_MODE, ...).
const EnvPrefix = "PREFBUILDER"

// Config is the effective CLI configuration.
type Config struct {
	Variables []string `yaml:"variables" mapstructure:"variables" validate:"required,min=1,max=20,unique,dive,propvar"`
	Mode      string   `yaml:"mode" mapstructure:"mode" validate:"required,oneof=cpo tpo CPO TPO"`
	Format    string   `yaml:"format" mapstructure:"format" validate:"required,oneof=json worldlist ranklist binary"`
	LogLevel  string   `yaml:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Indent    int      `yaml:"indent" mapstructure:"indent" validate:"gte=0,lte=8"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("propvar", validateVariable)
}

// validateVariable accepts non-empty names without surrounding whitespace.
func validateVariable(fl validator.FieldLevel) bool {
	s := fl.Field().String()

	return s != "" && strings.TrimSpace(s) == s
}

// Default returns a two-variable CPO configuration printing JSON.
func Default() Config {
	return Config{
		Variables: []string{"a", "b"},
		Mode:      preference.CPO.String(),
		Format:    parser.JSON.String(),
		LogLevel:  "info",
		Indent:    2,
	}
}

// Validate checks field constraints and that the variables form a signature.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Signature(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Signature builds the configured signature.
func (c Config) Signature() (signature.Signature, error) {
	vars := make([]signature.Variable, len(c.Variables))
	for i, v := range c.Variables {
		vars[i] = signature.Variable(v)
	}

	return signature.New(vars...)
}

// PreferenceMode parses Mode.
func (c Config) PreferenceMode() (preference.Mode, error) {
	return preference.ParseMode(c.Mode)
}

// OutputFormat parses Format.
func (c Config) OutputFormat() (parser.Format, error) {
	return parser.ParseFormat(c.Format)
}

// YAML renders c as a config file body.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// FromYAML reads a config file body over the defaults.
func FromYAML(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return c, nil
}
