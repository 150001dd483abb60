package menu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceleratorParse(t *testing.T) {
	tests := []struct {
		in   Accelerator
		want Chord
	}{
		{"CmdOrCtrl+N", Chord{Primary: true, Key: "N"}},
		{"CmdOrCtrl+,", Chord{Primary: true, Key: ","}},
		{"CmdOrCtrl+Shift+E", Chord{Primary: true, Shift: true, Key: "E"}},
		{"Alt+o", Chord{Alt: true, Key: "O"}},
	}
	for _, tt := range tests {
		got, err := tt.in.Parse()
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestAcceleratorParseErrors(t *testing.T) {
	for _, in := range []Accelerator{"", "N", "CmdOrCtrl+", "Meta+N", "CmdOrCtrl+F12"} {
		_, err := in.Parse()
		assert.True(t, errors.Is(err, ErrInvalidAccelerator), "%q: %v", in, err)
	}
}
