package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/locality-picker/internal/app"
	"github.com/atomicstack/locality-picker/internal/config"
	"github.com/atomicstack/locality-picker/internal/logging"
	"github.com/atomicstack/locality-picker/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// version is set via ldflags during build.
var version = "dev"

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// configError marks failures that stem from flags, environment or the
// config file rather than from running the picker.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }

func (e *configError) Unwrap() error { return e.err }

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(args, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	var cfgErr *configError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(stderr, "Configuration error: %v\n", cfgErr.err)
		return exitConfig
	}
	logging.Error(err)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitRuntime
}

func newRootCmd(rawArgs []string, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "locality-picker",
		Short:         "Pick a locality from a spreadsheet-backed list",
		Long:          "locality-picker fetches a list of localities from a Google Sheets proxy and lets you filter and pick one in the terminal. The chosen name is printed to stdout.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &configError{err: fmt.Errorf("unexpected arguments: %v", args)}
			}
			return nil
		},
	}
	config.RegisterFlags(cmd.Flags())
	printConfig := cmd.Flags().Bool("print-config", false, "print the resolved configuration as YAML and exit")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &configError{err: err}
	})
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		runtimeCfg, err := config.Load(cmd.Flags(), rawArgs)
		if err != nil {
			return &configError{err: err}
		}
		if err := config.Validate(runtimeCfg); err != nil {
			return &configError{err: err}
		}
		if *printConfig {
			data, err := config.Dump(runtimeCfg)
			if err != nil {
				return err
			}
			_, err = stdout.Write(data)
			return err
		}

		logging.Configure(runtimeCfg.Logging.FilePath)
		if err := logging.SetLevel(runtimeCfg.Logging.Level); err != nil {
			return &configError{err: err}
		}
		logging.SetTraceEnabled(runtimeCfg.Logging.Trace)
		traceStartup(runtimeCfg)

		selection, err := app.Run(runtimeCfg.App)
		if err != nil {
			return err
		}
		if runtimeCfg.App.PrintSelection && selection != "" {
			fmt.Fprintln(stdout, selection)
		}
		return nil
	}
	return cmd
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	redacted := cfg
	if redacted.App.APIToken != "" {
		redacted.App.APIToken = "REDACTED"
	}
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  redacted,
		"version": version,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
