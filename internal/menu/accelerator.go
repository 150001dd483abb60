package menu

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAccelerator = errors.New("invalid accelerator")

// Accelerator is a keybinding such as "CmdOrCtrl+Shift+E". CmdOrCtrl is
// the platform primary modifier.
type Accelerator string

// Chord is a parsed accelerator.
type Chord struct {
	Primary bool
	Shift   bool
	Alt     bool
	Key     string
}

func (a Accelerator) Parse() (Chord, error) {
	parts := strings.Split(string(a), "+")
	if len(parts) < 2 {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidAccelerator, string(a))
	}

	var c Chord
	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(mod) {
		case "cmdorctrl", "commandorcontrol", "primary":
			c.Primary = true
		case "shift":
			c.Shift = true
		case "alt", "option":
			c.Alt = true
		default:
			return Chord{}, fmt.Errorf("%w: modifier %q in %q", ErrInvalidAccelerator, mod, string(a))
		}
	}

	key := parts[len(parts)-1]
	if key == "" {
		// "CmdOrCtrl++" splits into a trailing empty token.
		return Chord{}, fmt.Errorf("%w: missing key in %q", ErrInvalidAccelerator, string(a))
	}
	if len([]rune(key)) != 1 {
		return Chord{}, fmt.Errorf("%w: key %q in %q", ErrInvalidAccelerator, key, string(a))
	}
	c.Key = strings.ToUpper(key)
	return c, nil
}
