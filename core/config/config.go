package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	AppLogName        = "app.log"
	HistoryName       = ".dragonshell_history"
)

type Configuration struct {
	configDir string
	configFs  afero.Fs

	// Motd is printed once when an interactive session starts.
	Motd string `json:"motd"`

	// Prompt is printed before every line read.
	Prompt string `json:"prompt" validate:"required"`

	// Color renders the prompt in color when stdin is a terminal.
	Color bool `json:"color"`

	HistoryFile string `json:"history_file" validate:"required"`
	LogFile     string `json:"log_file" validate:"required"`
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

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		c.configFs = afero.NewBasePathFs(afero.NewOsFs(), c.configDir)
	}
	return c.configFs
}

// OpenAppLog opens the session event log in an append only state.
func (c *Configuration) OpenAppLog() (afero.File, error) {
	return c.fs().OpenFile(c.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadAppLog opens the session event log for reading.
func (c *Configuration) ReadAppLog() (afero.File, error) {
	return c.fs().OpenFile(c.LogFile, os.O_RDONLY, 0600)
}

// HistoryPath is the path readline persists input history to.
func (c *Configuration) HistoryPath() string {
	return filepath.Join(c.configDir, c.HistoryFile)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Default returns the built-in configuration rooted at the given directory.
func Default(dir string) *Configuration {
	out := defaultConfig()
	out.configDir = dir
	return out
}
