package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestLayout_Deterministic(t *testing.T) {
	a := Layout([]string{"sA", "sB"}, []string{"down", "up"})
	b := Layout([]string{"sA", "sB"}, []string{"down", "up"})
	require.Equal(t, a, b)
}

func TestLayout_Sensitivity(t *testing.T) {
	base := Layout([]string{"sA", "sB"}, []string{"down", "up"})

	require.NotEqual(t, base, Layout([]string{"sB", "sA"}, []string{"down", "up"}), "order matters")
	require.NotEqual(t, base, Layout([]string{"sA"}, []string{"sB", "down", "up"}), "group boundary matters")
	require.NotEqual(t, base, Layout([]string{"sAsB"}, []string{"down", "up"}), "name boundary matters")
	require.NotEqual(t, Layout(), Layout([]string{}), "empty group is recorded")
}
