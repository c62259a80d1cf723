package hashing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tb3/pkg/hashing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "sorted keys",
			in:   map[string]any{"stage": "RECV", "cpu_ms": 12, "edgeAddr": "e1"},
			want: `{"cpu_ms":12,"edgeAddr":"e1","stage":"RECV"}`,
		},
		{
			name: "nested and unescaped",
			in:   map[string]any{"b": map[string]any{"z": true, "a": nil}, "a": "<x>&é"},
			want: `{"a":"<x>&é","b":{"a":null,"z":true}}`,
		},
		{
			name: "struct fields sorted",
			in: struct {
				Zeta  int    `json:"zeta"`
				Alpha string `json:"alpha"`
			}{Zeta: 1, Alpha: "a"},
			want: `{"alpha":"a","zeta":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hashing.Canonical(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestCanonicalizeJSON_KeepsNumbers(t *testing.T) {
	got, err := hashing.CanonicalizeJSON([]byte(`{ "ts": 1700000000123, "p": 0.25 }`))
	require.NoError(t, err)
	require.Equal(t, `{"p":0.25,"ts":1700000000123}`, string(got))

	_, err = hashing.CanonicalizeJSON([]byte(`{"broken"`))
	require.Error(t, err)
}

func TestHashes(t *testing.T) {
	// sha256 of the empty string
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hashing.SHA256Hex(nil))

	a, err := hashing.HashJSON(map[string]any{"a": 1, "b": 2})
	require.NoError(t, err)
	b, err := hashing.HashJSONString(`{"b":2,  "a":1}`)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 64)
}
