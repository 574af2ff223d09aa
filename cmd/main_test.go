package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		reverse bool
		unique  bool
		want    string
	}{
		{
			name: "empty",
			want: "Traverse list (Forward direction):\n\nTraverse list (Backward direction):\n\n",
		},
		{
			name: "insertion order",
			args: []string{"-1", "0"},
			want: "Traverse list (Forward direction):\n-1 0 \nTraverse list (Backward direction):\n0 -1 \n",
		},
		{
			name:    "reversed",
			args:    []string{"1", "2", "3", "4", "5", "6"},
			reverse: true,
			want:    "Traverse list (Forward direction):\n6 5 4 3 2 1 \nTraverse list (Backward direction):\n1 2 3 4 5 6 \n",
		},
		{
			name:   "unique skips duplicates",
			args:   []string{"7", "7", "8"},
			unique: true,
			want:   "Traverse list (Forward direction):\n7 8 \nTraverse list (Backward direction):\n8 7 \n",
		},
		{
			name: "duplicates kept by default",
			args: []string{"7", "7"},
			want: "Traverse list (Forward direction):\n7 7 \nTraverse list (Backward direction):\n7 7 \n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, run(&buf, tt.args, tt.reverse, tt.unique, zerolog.Nop()))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunRejectsNonInteger(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, []string{"1", "two"}, false, false, zerolog.Nop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"two"`)
	assert.Empty(t, buf.String())
}
