package ui

import (
	"github.com/atomicstack/locality-picker/internal/backend"
	"github.com/atomicstack/locality-picker/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForLoaderEvent(l *backend.Loader) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-l.Events()
		if !ok {
			return loaderDoneMsg{}
		}
		return loaderEventMsg{event: evt}
	}
}

type loaderEventMsg struct {
	event backend.Event
}

type loaderDoneMsg struct{}

func (m *Model) handleLoaderEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(loaderEventMsg)
	if !ok {
		return nil
	}
	m.applyLoaderEvent(eventMsg.event)
	if m.loader != nil {
		return waitForLoaderEvent(m.loader)
	}
	return nil
}

func (m *Model) handleLoaderDoneMsg(tea.Msg) tea.Cmd {
	m.loader = nil
	return nil
}

func (m *Model) applyLoaderEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if !res.Resolved {
		logging.Warn("loader result ignored", "phase", res.State.Phase().String())
		return
	}
	if res.State.IsError() {
		logging.Error(evt.Err)
		return
	}
	logging.Info("locations loaded", "count", len(res.State.Items()))
}
