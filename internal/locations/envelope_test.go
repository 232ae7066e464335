package locations

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelopePreservesOrderAndNames(t *testing.T) {
	items, err := ParseEnvelope([]byte(`{"result":{"data":[{"Name":"Sakchi"},{"Name":"  Bistupur "},{"Name":"Kadma","Ward":7}]}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Sakchi", "  Bistupur ", "Kadma"}, Names(items))
}

func TestParseEnvelopeEmptyList(t *testing.T) {
	items, err := ParseEnvelope([]byte(`{"result":{"data":[]}}`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseEnvelopeMissingNameYieldsEmptyName(t *testing.T) {
	items, err := ParseEnvelope([]byte(`{"result":{"data":[{"Ward":1}]}}`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].Name())
}

func TestParseEnvelopeRejectsMalformedBodies(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		malformed bool
	}{
		{name: "not json", body: "<html>", malformed: false},
		{name: "top level array", body: `[{"Name":"x"}]`, malformed: false},
		{name: "missing result", body: `{"status":"ok"}`, malformed: true},
		{name: "missing data", body: `{"result":{}}`, malformed: true},
		{name: "null data", body: `{"result":{"data":null}}`, malformed: true},
		{name: "object data", body: `{"result":{"data":{"Name":"Sonari"}}}`, malformed: true},
		{name: "string data", body: `{"result":{"data":"Sonari"}}`, malformed: true},
		{name: "non object record", body: `{"result":{"data":["Sonari"]}}`, malformed: true},
		{name: "numeric name", body: `{"result":{"data":[{"Name":5}]}}`, malformed: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := ParseEnvelope([]byte(tc.body))
			require.Error(t, err)
			assert.Nil(t, items)
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
			assert.Equal(t, tc.malformed, errors.Is(err, ErrMalformed))
		})
	}
}

func TestParseEnvelopeNonListMessage(t *testing.T) {
	_, err := ParseEnvelope([]byte(`{"result":{"data":{}}}`))
	require.Error(t, err)
	assert.Equal(t, "malformed response: result.data is not a list", err.Error())
}
