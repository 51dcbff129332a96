package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ichingweb/chatmark"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/viper"
)

// Config holds the command line configuration.
type Config struct {
	Output      string `mapstructure:"output"`
	XHTML       bool   `mapstructure:"xhtml"`
	TargetBlank bool   `mapstructure:"target_blank"`
	HeadingIDs  bool   `mapstructure:"heading_ids"`
	Sanitize    bool   `mapstructure:"sanitize"`
	Page        bool   `mapstructure:"page"`
	Title       string `mapstructure:"title"`
	CSS         string `mapstructure:"css"`
	Theme       string `mapstructure:"theme"`
	Trace       string `mapstructure:"trace"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "")
	v.SetDefault("xhtml", true)
	v.SetDefault("target_blank", true)
	v.SetDefault("heading_ids", false)
	v.SetDefault("sanitize", false)
	v.SetDefault("page", false)
	v.SetDefault("title", "")
	v.SetDefault("css", "")
	v.SetDefault("theme", "none")
	v.SetDefault("trace", "error")
}

// loadConfig reads defaults, the config file, CHATMARK_* environment
// variables and bound flags, in increasing order of precedence. A missing
// config file is not an error unless cfgPath names it explicitly.
func loadConfig(v *viper.Viper, cfgPath string) (Config, error) {
	setDefaults(v)

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("chatmark")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "chatmark"))
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CHATMARK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

// renderer builds the renderer the configuration asks for.
func (c Config) renderer() (*chatmark.HTML, error) {
	flags := chatmark.NoopenerLinks | chatmark.NoreferrerLinks
	if c.XHTML {
		flags |= chatmark.UseXHTML
	}
	if c.TargetBlank {
		flags |= chatmark.HrefTargetBlank
	}
	if c.HeadingIDs {
		flags |= chatmark.HeadingIDs
	}
	if c.Sanitize {
		flags |= chatmark.SanitizeOutput
	}
	// a title or stylesheet only makes sense on a complete page
	if c.Page || c.Title != "" || c.CSS != "" {
		flags |= chatmark.CompletePage
	}

	params := chatmark.HTMLRendererParameters{
		Title: c.Title,
		CSS:   c.CSS,
	}
	switch strings.ToLower(c.Theme) {
	case "", "none":
	case "tailwind":
		params.Classes = chatmark.TailwindClasses()
	default:
		return nil, fmt.Errorf("unsupported theme: %s (supported: none, tailwind)", c.Theme)
	}
	return chatmark.NewHTMLRenderer(flags, params), nil
}

// setTraceLevel sets the level of the chatmark tracer by name.
func setTraceLevel(name string) error {
	switch strings.ToLower(name) {
	case "", "error":
		tracer().SetTraceLevel(tracing.LevelError)
	case "info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	default:
		return fmt.Errorf("unsupported trace level: %s (supported: error, info, debug)", name)
	}
	return nil
}
