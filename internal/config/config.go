package config

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Clippings
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Clippings struct {
		Path         string       // Clippings file used when the parse command gets no argument
		OutputFormat OutputFormat // text, json or yaml
	}
)

// Load reads an optional .env file and then the environment. An empty
// envFile means ".env" in the working directory; a missing file is ignored.
func Load(envFile string) (*Config, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file without overriding variables
// that are already set.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("clippings_path", DefaultClippingsPath)
	v.SetDefault("output_format", string(DefaultOutputFormat))

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Clippings: Clippings{
			Path:         v.GetString("CLIPPINGS_PATH"),
			OutputFormat: OutputFormat(v.GetString("OUTPUT_FORMAT")),
		},
	}
}

func (c *Config) Validate() error {
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	if err := c.Global.Validate(); err != nil {
		return err
	}
	return c.Clippings.Validate()
}

func (c *HTTP) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(int32(1)), validation.Max(int32(65535))),
	)
}

// Address returns the listen address for the HTTP server.
func (c *HTTP) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *Global) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ShutdownTimeoutInSeconds, validation.Required, validation.Min(1)),
	)
}

func (c *Clippings) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OutputFormat, validation.Required,
			validation.In(OutputFormatText, OutputFormatJSON, OutputFormatYAML)),
	)
}
