package config

import (
	_ "embed"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/josephlewis42/editorcmd/core/editor"
	"github.com/josephlewis42/editorcmd/core/vos"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte

	envVarPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

const (
	ConfigurationName = "config.yaml"

	// Source names reported for the configured commands.
	SourceEditor   = "editor"
	SourceFallback = "fallback"
)

type Configuration struct {
	// Editor is offered before any environment variable. Nil means unset,
	// an empty string is a (broken) setting.
	Editor *string `json:"editor,omitempty"`

	// EnvironmentVariables are offered in order after Editor. Nil uses
	// VISUAL and EDITOR, an empty list consults no variables.
	EnvironmentVariables []string `json:"environment_variables" validate:"max=16,unique,dive,required,envvar"`

	// Fallback is offered last.
	Fallback *string `json:"fallback,omitempty"`

	configurationDir string
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})
	if err := validate.RegisterValidation("envvar", func(fl validator.FieldLevel) bool {
		return envVarPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	return validate.Struct(c)
}

// Dir returns the directory the configuration was loaded from, if any.
func (c *Configuration) Dir() string {
	return c.configurationDir
}

// EnvVars returns the environment variables consulted, in precedence order.
func (c *Configuration) EnvVars() []string {
	if c.EnvironmentVariables == nil {
		return editor.DefaultEnvironmentVariables()
	}
	return c.EnvironmentVariables
}

// Source is one candidate editor command.
type Source struct {
	Name    string
	Value   string
	Present bool
	// Env is set if the source is an environment variable.
	Env bool
}

// Sources lists every source the configuration consults, highest priority
// first, with the values currently visible in env.
func (c *Configuration) Sources(env vos.EnvLookuper) []Source {
	var out []Source

	out = append(out, optionalSource(SourceEditor, c.Editor))
	for _, name := range c.EnvVars() {
		value, ok := env.LookupEnv(name)
		out = append(out, Source{Name: name, Value: value, Present: ok, Env: true})
	}
	out = append(out, optionalSource(SourceFallback, c.Fallback))

	return out
}

func optionalSource(name string, value *string) Source {
	if value == nil {
		return Source{Name: name}
	}
	return Source{Name: name, Value: *value, Present: true}
}

// Command creates an editor command offering the configured sources in
// order. Environment variables are read from env when Command is called.
func (c *Configuration) Command(env vos.EnvLookuper) *editor.Command {
	return editor.NewWithEnv(env).
		OfferOptional(SourceEditor, c.Editor).
		OfferEnvironmentVars(c.EnvVars()...).
		OfferOptional(SourceFallback, c.Fallback)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	return defaultConfig()
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
