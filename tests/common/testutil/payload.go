//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Payload is a request DTO as the JSON object a client sends, so a test can
// drop or corrupt one field the typed DTO would not let it express.
type Payload map[string]any

type Edit func(Payload)

func PayloadOf(t *testing.T, dto any, edits ...Edit) Payload {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	var p Payload
	require.NoError(t, json.Unmarshal(raw, &p))
	for _, edit := range edits {
		edit(p)
	}
	return p
}

func Without(key string) Edit {
	return func(p Payload) { delete(p, key) }
}

// With replaces the value, usually with one of the wrong type or format.
func With(key string, value any) Edit {
	return func(p Payload) { p[key] = value }
}
