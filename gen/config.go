package gen

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"gopkg.in/yaml.v3"

	"protots/gen/sink"
	"protots/gen/typescript"
)

// Config holds the configuration for code generation.
type Config struct {
	// OutDir is the directory where generated files will be written.
	// Required unless a custom Sink is supplied.
	OutDir string `yaml:"out" schema:"-"`

	// ImportPaths are the .proto import search roots.
	ImportPaths []string `yaml:"import_paths" schema:"-"`

	// ConstEnum emits `const enum` declarations instead of `enum`.
	ConstEnum bool `yaml:"const_enum" schema:"const_enum"`

	// NoComments drops .proto doc comments from the output.
	NoComments bool `yaml:"no_comments" schema:"no_comments"`

	// NoTranslations disables the per-enum translation tables.
	NoTranslations bool `yaml:"no_translations" schema:"no_translations"`

	// AnonymousEnumName is the identifier declared for an enum whose
	// descriptor carries no name. Defaults to "UnnamedEnum".
	AnonymousEnumName string `yaml:"anonymous_enum_name" schema:"anonymous_enum_name" validate:"omitempty,tsident"`

	// Header overrides the generated-by banner at the top of each file.
	Header string `yaml:"header" schema:"-"`

	// Sink overrides the output destination. When nil, files go to a
	// filesystem sink rooted at OutDir.
	Sink sink.OutputSink `yaml:"-" schema:"-"`
}

var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var validate = func() *validator.Validate {
	v := validator.New()
	must(v.RegisterValidation("tsident", func(fl validator.FieldLevel) bool {
		return identPattern.MatchString(fl.Field().String())
	}))
	return v
}()

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseParameter decodes a protoc-style parameter string, e.g.
// "const_enum=true,anonymous_enum_name=Hidden", into a Config. A key
// with no value is treated as a boolean true.
func ParseParameter(param string) (*Config, error) {
	values := url.Values{}
	if param != "" {
		for _, kv := range strings.Split(param, ",") {
			key, val, found := strings.Cut(kv, "=")
			if !found {
				val = "true"
			}
			values.Add(key, val)
		}
	}

	cfg := &Config{}
	dec := schema.NewDecoder()
	if err := dec.Decode(cfg, values); err != nil {
		return nil, fmt.Errorf("invalid parameter %q: %w", param, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// emitterConfig maps the public configuration onto the emitter's.
func (c *Config) emitterConfig() typescript.Config {
	return typescript.Config{
		ConstEnum:         c.ConstEnum,
		EmitComments:      !c.NoComments,
		TranslationTables: !c.NoTranslations,
		AnonymousEnumName: c.AnonymousEnumName,
		Header:            c.Header,
	}
}
