package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/glossary/internal/app"
	"github.com/atomicstack/glossary/internal/config"
	"github.com/atomicstack/glossary/internal/logging"
	"github.com/atomicstack/glossary/internal/logging/events"
	"golang.org/x/term"
)

const (
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stderr, app.Run))
}

func run(args, environ []string, stderr io.Writer, start func(app.Config) error) int {
	cfg, err := config.LoadArgs(args, environ)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitConfig
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(cfg))
	}

	if err := start(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitRuntime
	}
	return 0
}

// startupTracePayload records how the program was launched.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = logging.Path()
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"source": cfg.App.Source,
		"theme":  cfg.App.Theme.String(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = probeTerminal()
	return payload
}

type terminalInfo struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal reports which standard descriptors are terminals and their size.
func probeTerminal() []terminalInfo {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	out := make([]terminalInfo, len(files))
	for i, f := range files {
		info := terminalInfo{Name: names[i]}
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			info.IsTerminal = true
			if w, h, err := term.GetSize(fd); err == nil {
				info.Width, info.Height = w, h
			} else {
				info.Error = err.Error()
			}
		}
		out[i] = info
	}
	return out
}
