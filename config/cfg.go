package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ScaffoldConfig struct {
		Create   bool   `yaml:"create"`
		Name     string `yaml:"name"`
		Template string `yaml:"template" validate:"required"`
	}

	ConversionConfig struct {
		Indent       string         `yaml:"indent" validate:"required"`
		ContainerTag string         `yaml:"container_tag" validate:"required"`
		KeepScripts  bool           `yaml:"keep_scripts"`
		Input        string         `yaml:"input" validate:"oneof=html xml"`
		Charset      string         `yaml:"charset"`
		Scaffold     ScaffoldConfig `yaml:"scaffold"`
	}

	Config struct {
		Version    int              `yaml:"version" validate:"eq=1"`
		Conversion ConversionConfig `yaml:"conversion"`
		Logging    LoggingConfig    `yaml:"logging"`
		Reporting  ReporterConfig   `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	ScaffoldTemplateFieldName TemplateFieldName = "template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(ScaffoldTemplateFieldName)),
)

var (
	identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	tagNameRe    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._:-]*$`)
)

// ValidComponentName reports whether name can be used as a JavaScript
// variable name in the scaffold.
func ValidComponentName(name string) bool {
	return identifierRe.MatchString(name)
}

// ValidTagName reports whether name can be used as a wrapping element.
func ValidTagName(name string) bool {
	return tagNameRe.MatchString(name)
}

// checkNames covers what validator tags cannot express.
func checkNames(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	if name := cfg.Conversion.Scaffold.Name; len(name) > 0 && !ValidComponentName(name) {
		sl.ReportError(name, "Conversion.Scaffold.Name", "Name", "jsidentifier", "")
	}
	if tag := cfg.Conversion.ContainerTag; len(tag) > 0 && !ValidTagName(tag) {
		sl.ReportError(tag, "Conversion.ContainerTag", "ContainerTag", "tagname", "")
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkNames)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
