// Package config resolves runtime configuration from flags, LOCALITY_PICKER_*
// environment variables and an optional YAML file, in that order of
// precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/atomicstack/locality-picker/internal/app"
	"github.com/atomicstack/locality-picker/internal/locations"
	"github.com/atomicstack/locality-picker/internal/ui"
	"github.com/atomicstack/locality-picker/internal/ui/combobox"
	"github.com/charmbracelet/log"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config `yaml:"app"`
	Logging Logging    `yaml:"logging"`
	// File is the config file that was read, if any.
	File  string            `yaml:"file,omitempty"`
	Flags map[string]string `yaml:"-"`
	Args  []string          `yaml:"-"`
}

type Logging struct {
	FilePath string `yaml:"log-file"`
	Level    string `yaml:"log-level"`
	Trace    bool   `yaml:"trace"`
}

const envPrefix = "LOCALITY_PICKER"

const (
	keyAPIToken       = "api-token"
	keySpreadsheetID  = "spreadsheet-id"
	keyEndpoint       = "endpoint"
	keyTimeout        = "timeout"
	keyLabel          = "label"
	keyPlaceholder    = "placeholder"
	keyMatch          = "match"
	keyMaxVisible     = "max-visible"
	keyWidth          = "width"
	keyHeight         = "height"
	keyFooter         = "footer"
	keyPrintSelection = "print-selection"
	keyTrace          = "trace"
	keyLogFile        = "log-file"
	keyLogLevel       = "log-level"
	keyConfig         = "config"
)

// RegisterFlags defines the command line flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(keyAPIToken, "", "API token for the spreadsheet service")
	fs.String(keySpreadsheetID, "", "identifier of the spreadsheet holding the locations")
	fs.String(keyEndpoint, locations.DefaultEndpoint, "spreadsheet lookup endpoint")
	fs.Duration(keyTimeout, 0, "timeout for the location lookup (0 waits indefinitely)")
	fs.String(keyLabel, ui.DefaultLabel, "label shown above the input")
	fs.String(keyPlaceholder, ui.DefaultPlaceholder, "placeholder shown in the empty input")
	fs.String(keyMatch, combobox.MatchSubstring.String(), "filter mode: substring or fuzzy")
	fs.Int(keyMaxVisible, 0, "maximum number of menu rows (0 fits the terminal)")
	fs.Int(keyWidth, 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(keyHeight, 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool(keyFooter, false, "show the key help footer")
	fs.Bool(keyPrintSelection, true, "print the selected location to stdout on exit")
	fs.Bool(keyTrace, false, "enable verbose JSON trace logging")
	fs.String(keyLogFile, "", "path to the log file")
	fs.String(keyLogLevel, "info", "minimum log level: debug, info, warn or error")
	fs.String(keyConfig, "", "path to a YAML config file")
}

// Load resolves configuration for the parsed flag set. args is recorded
// verbatim for trace output.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	file := strings.TrimSpace(v.GetString(keyConfig))
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	ints := map[string]int{}
	for _, key := range []string{keyMaxVisible, keyWidth, keyHeight} {
		n, err := cast.ToIntE(v.Get(key))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", key, err)
		}
		ints[key] = n
	}
	timeout, err := cast.ToDurationE(v.Get(keyTimeout))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", keyTimeout, err)
	}
	bools := map[string]bool{}
	for _, key := range []string{keyFooter, keyPrintSelection, keyTrace} {
		b, err := cast.ToBoolE(v.Get(key))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", key, err)
		}
		bools[key] = b
	}
	match, err := combobox.ParseMatchMode(v.GetString(keyMatch))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Endpoint:       v.GetString(keyEndpoint),
			APIToken:       v.GetString(keyAPIToken),
			SpreadsheetID:  v.GetString(keySpreadsheetID),
			Timeout:        timeout,
			Label:          v.GetString(keyLabel),
			Placeholder:    v.GetString(keyPlaceholder),
			Match:          match,
			MaxVisible:     ints[keyMaxVisible],
			Width:          ints[keyWidth],
			Height:         ints[keyHeight],
			ShowFooter:     bools[keyFooter],
			PrintSelection: bools[keyPrintSelection],
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Level:    v.GetString(keyLogLevel),
			Trace:    bools[keyTrace],
		},
		File:  file,
		Flags: make(map[string]string),
		Args:  append([]string(nil), args...),
	}
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == keyAPIToken {
			return
		}
		cfg.Flags[f.Name] = v.GetString(f.Name)
	})
	return cfg, nil
}

// Validate reports values that cannot be used.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.MaxVisible < 0 {
		return fmt.Errorf("max-visible must be >= 0 (got %d)", cfg.App.MaxVisible)
	}
	if cfg.App.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", cfg.App.Timeout)
	}
	if strings.TrimSpace(cfg.App.Endpoint) == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	if _, err := locations.BuildURL(cfg.App.Endpoint, "", ""); err != nil {
		return err
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" {
		if _, err := log.ParseLevel(strings.ToLower(level)); err != nil {
			return fmt.Errorf("log-level: %w", err)
		}
	}
	return nil
}

// Dump renders cfg as YAML with the API token redacted.
func Dump(cfg Config) ([]byte, error) {
	redacted := cfg
	if redacted.App.APIToken != "" {
		redacted.App.APIToken = "REDACTED"
	}
	out := struct {
		Config `yaml:",inline"`
		Match  string `yaml:"match"`
	}{Config: redacted, Match: cfg.App.Match.String()}
	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
