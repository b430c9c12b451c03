package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/glossary/internal/app"
	"github.com/atomicstack/glossary/internal/theme"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSource     = "GLOSSARY_SOURCE"
	envTimeout    = "GLOSSARY_TIMEOUT"
	envWidth      = "GLOSSARY_WIDTH"
	envHeight     = "GLOSSARY_HEIGHT"
	envShowFooter = "GLOSSARY_FOOTER"
	envLight      = "GLOSSARY_LIGHT"
	envTrace      = "GLOSSARY_TRACE"
	envLogFile    = "GLOSSARY_LOG_FILE"

	defaultSource  = "data.json"
	defaultTimeout = 10 * time.Second
)

// LoadArgs parses configuration from CLI arguments and environment variables
// given as KEY=value pairs.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("glossary", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	source := fs.String("source", envOrDefault(env, envSource, defaultSource), "URL or path of the glossary JSON document")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, defaultTimeout), "maximum time to wait for the glossary to load")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the footer with key hints")
	light := fs.Bool("light", envOrBool(env, envLight, false), "start with the light theme")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	mode := theme.Dark
	if *light {
		mode = theme.Light
	}

	cfg := Config{
		App: app.Config{
			Source:     strings.TrimSpace(*source),
			Timeout:    *timeout,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Theme:      mode,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"source":  *source,
			"timeout": timeout.String(),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"light":   strconv.FormatBool(*light),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Source == "" {
		return fmt.Errorf("source must not be empty")
	}
	if cfg.App.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", cfg.App.Timeout)
	}
	return nil
}
