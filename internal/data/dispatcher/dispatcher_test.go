package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/locality-picker/internal/backend"
	"github.com/atomicstack/locality-picker/internal/locations"
	"github.com/atomicstack/locality-picker/internal/state"
	"github.com/stretchr/testify/assert"
)

func TestHandleReadyEvent(t *testing.T) {
	store := state.NewLoadStore()
	d := New(store)
	res := d.Handle(backend.Event{Items: []*locations.Item{locations.NewItem("Sonari")}})
	assert.True(t, res.Resolved)
	assert.True(t, res.State.IsReady())
	assert.Equal(t, []string{"Sonari"}, locations.Names(store.State().Items()))
}

func TestHandleErrorEventNeverReady(t *testing.T) {
	store := state.NewLoadStore()
	d := New(store)
	res := d.Handle(backend.Event{Items: []*locations.Item{locations.NewItem("x")}, Err: errors.New("connection refused")})
	assert.True(t, res.Resolved)
	assert.True(t, res.State.IsError())
	assert.Equal(t, "connection refused", res.State.Message())

	res = d.Handle(backend.Event{Items: []*locations.Item{locations.NewItem("late")}})
	assert.False(t, res.Resolved)
	assert.True(t, res.State.IsError())
}
