package ui

import (
	"reflect"

	"github.com/atomicstack/locality-picker/internal/backend"
	"github.com/atomicstack/locality-picker/internal/data/dispatcher"
	"github.com/atomicstack/locality-picker/internal/locations"
	"github.com/atomicstack/locality-picker/internal/logging/events"
	"github.com/atomicstack/locality-picker/internal/state"
	"github.com/atomicstack/locality-picker/internal/theme"
	"github.com/atomicstack/locality-picker/internal/ui/combobox"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const (
	DefaultLabel       = "Select Localities in Jamshedpur"
	DefaultPlaceholder = "locations..."
	comboboxID         = "locality"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the picker model.
type Options struct {
	Label       string
	Placeholder string
	Match       combobox.MatchMode
	// MaxVisible caps the number of menu rows; zero fits the terminal.
	MaxVisible int
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model for the locality picker.
type Model struct {
	opts Options

	combo      *combobox.Controller
	loads      state.LoadStore
	dispatcher *dispatcher.Dispatcher
	loader     *backend.Loader

	spinner          spinner.Model
	inputCursor      cursor.Model
	inputCursorDirty bool
	focused          bool

	zones *zone.Manager
	keys  keyMap
	help  help.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	aborted bool

	handlers    map[reflect.Type]msgHandler
	unsubscribe []func()
}

// NewModel wires the picker to loads. loader may be nil when the caller
// feeds loader events itself.
func NewModel(opts Options, loads state.LoadStore, loader *backend.Loader) *Model {
	if opts.Label == "" {
		opts.Label = DefaultLabel
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}
	if loads == nil {
		loads = state.NewLoadStore()
	}
	m := &Model{
		opts:       opts,
		loads:      loads,
		dispatcher: dispatcher.New(loads),
		loader:     loader,
		zones:      zone.New(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		combo: combobox.New(loads.State().Items(),
			combobox.WithID(comboboxID),
			combobox.WithMatchMode(opts.Match),
			combobox.WithPageSize(opts.MaxVisible),
		),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	if styles.Spinner != nil {
		m.spinner.Style = styles.Spinner.Copy()
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Input != nil {
		c.TextStyle = styles.Input.Copy()
	}
	c.SetChar(" ")
	m.inputCursor = c

	m.unsubscribe = append(m.unsubscribe,
		loads.Subscribe(m.applyLoadState),
		m.combo.Subscribe(m.traceComboboxState),
	)
	m.syncPageSize()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.loader != nil {
		m.loader.Start()
		cmds = append(cmds, waitForLoaderEvent(m.loader))
	}
	if m.loads.State().IsLoading() {
		cmds = append(cmds, m.spinner.Tick)
	}
	m.focused = true
	if cmd := m.inputCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateInputCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(loaderEventMsg{}):    m.handleLoaderEventMsg,
		reflect.TypeOf(loaderDoneMsg{}):     m.handleLoaderDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.inputCursorDirty {
		m.inputCursorDirty = false
		m.inputCursor.Blink = false
		if m.focused {
			if cmd := m.inputCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.loads.State().IsLoading() {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

// applyLoadState runs on the event loop when the load store resolves.
func (m *Model) applyLoadState(st locations.LoadState) {
	if st.IsReady() {
		m.combo.SetItems(st.Items())
	}
}

func (m *Model) traceComboboxState(st combobox.State) {
	selected := ""
	if st.SelectedItem != nil {
		selected = st.SelectedItem.Name()
	}
	events.Combobox.State(st.InputValue, st.IsOpen, st.HighlightedIndex, selected, len(m.combo.FilteredItems()))
}

// Combobox exposes the interaction controller.
func (m *Model) Combobox() *combobox.Controller {
	return m.combo
}

// LoadState returns the current loader state.
func (m *Model) LoadState() locations.LoadState {
	return m.loads.State()
}

// Selection returns the committed item's name, or "" when nothing was
// selected or the program was aborted.
func (m *Model) Selection() string {
	if m.aborted {
		return ""
	}
	return m.combo.SelectedItem().Name()
}

// Close releases subscriptions and the mouse zone worker.
func (m *Model) Close() {
	for _, fn := range m.unsubscribe {
		fn()
	}
	m.unsubscribe = nil
	if m.zones != nil {
		m.zones.Close()
	}
}
