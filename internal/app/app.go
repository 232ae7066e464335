package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/locality-picker/internal/backend"
	"github.com/atomicstack/locality-picker/internal/locations"
	"github.com/atomicstack/locality-picker/internal/logging"
	"github.com/atomicstack/locality-picker/internal/logging/events"
	"github.com/atomicstack/locality-picker/internal/state"
	"github.com/atomicstack/locality-picker/internal/ui"
	"github.com/atomicstack/locality-picker/internal/ui/combobox"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Endpoint      string             `yaml:"endpoint"`
	APIToken      string             `yaml:"api-token"`
	SpreadsheetID string             `yaml:"spreadsheet-id"`
	Timeout       time.Duration      `yaml:"timeout"`
	Label         string             `yaml:"label"`
	Placeholder   string             `yaml:"placeholder"`
	Match         combobox.MatchMode `yaml:"-"`
	MaxVisible    int                `yaml:"max-visible"`
	Width         int                `yaml:"width"`
	Height        int                `yaml:"height"`
	ShowFooter    bool               `yaml:"footer"`
	// PrintSelection writes the chosen name to stdout after the program exits.
	PrintSelection bool `yaml:"print-selection"`
}

// Run bootstraps and executes the Bubble Tea program. It returns the name of
// the committed selection, or "" when the user left without choosing.
func Run(cfg Config, opts ...tea.ProgramOption) (string, error) {
	client := locations.NewClient(locations.ClientConfig{
		Endpoint:      cfg.Endpoint,
		APIToken:      cfg.APIToken,
		SpreadsheetID: cfg.SpreadsheetID,
		Timeout:       cfg.Timeout,
	})
	loader := backend.NewLoader(client)
	defer loader.Wait()
	defer loader.Stop()

	loads := state.NewLoadStore()
	unsubscribe := loads.Subscribe(func(st locations.LoadState) {
		logging.Debug("load store resolved", "phase", st.Phase(), "items", len(st.Items()))
	})
	defer unsubscribe()

	model := ui.NewModel(ui.Options{
		Label:       cfg.Label,
		Placeholder: cfg.Placeholder,
		Match:       cfg.Match,
		MaxVisible:  cfg.MaxVisible,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
	}, loads, loader)
	defer model.Close()

	programOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	program := tea.NewProgram(model, programOpts...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		err = fmt.Errorf("run picker: %w", err)
	}
	selection := model.Selection()
	events.App.Exit(selection, err)
	return selection, err
}
