package locations

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed marks a body that decoded as JSON but does not carry the
// expected result.data list.
var ErrMalformed = errors.New("malformed response")

type envelope struct {
	Result *struct {
		Data json.RawMessage `json:"data"`
	} `json:"result"`
}

type record struct {
	Name string `json:"Name"`
}

// ParseEnvelope extracts the ordered item list from result.data. Any
// decoding or shape problem is returned as a *ParseError.
func ParseEnvelope(body []byte) ([]*Item, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if env.Result == nil {
		return nil, &ParseError{Err: fmt.Errorf("%w: missing result", ErrMalformed)}
	}
	data := bytes.TrimSpace(env.Result.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, &ParseError{Err: fmt.Errorf("%w: missing result.data", ErrMalformed)}
	}
	if data[0] != '[' {
		return nil, &ParseError{Err: fmt.Errorf("%w: result.data is not a list", ErrMalformed)}
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	items := make([]*Item, len(records))
	for i, rec := range records {
		items[i] = NewItem(rec.Name)
	}
	return items, nil
}
