// Package menu describes the application menu bar as data and assembles it
// into native primitives through a host Handle.
package menu

import (
	"errors"
	"fmt"
	"regexp"
)

// Platform is a host operating-system tag, matching runtime.GOOS values.
type Platform string

const (
	Darwin  Platform = "darwin"
	Windows Platform = "windows"
	Linux   Platform = "linux"
)

// HasAppMenu reports whether the platform gets the application identity group.
func (p Platform) HasAppMenu() bool {
	return p == Darwin
}

type Scope int

const (
	ScopeAll Scope = iota
	ScopeMacOnly
	ScopeNonMac
)

func (s Scope) Includes(p Platform) bool {
	switch s {
	case ScopeMacOnly:
		return p.HasAppMenu()
	case ScopeNonMac:
		return !p.HasAppMenu()
	default:
		return true
	}
}

func (s Scope) String() string {
	switch s {
	case ScopeMacOnly:
		return "macos"
	case ScopeNonMac:
		return "non-macos"
	default:
		return "all"
	}
}

func (s Scope) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Role is a built-in system action owned by the host. Roles carry no
// identifier and never reach the router.
type Role string

const (
	RoleAbout       Role = "about"
	RoleServices    Role = "services"
	RoleHide        Role = "hide"
	RoleHideOthers  Role = "hide-others"
	RoleShowAll     Role = "show-all"
	RoleQuit        Role = "quit"
	RoleCloseWindow Role = "close-window"
	RoleUndo        Role = "undo"
	RoleRedo        Role = "redo"
	RoleCut         Role = "cut"
	RoleCopy        Role = "copy"
	RolePaste       Role = "paste"
	RoleSelectAll   Role = "select-all"
	RoleFullscreen  Role = "fullscreen"
	RoleMinimize    Role = "minimize"
	RoleMaximize    Role = "maximize"
)

// Item is an actionable menu entry. ID is the only value shared with the
// router and the UI layer; Label and Accelerator are presentation.
type Item struct {
	ID          string      `yaml:"id"`
	Label       string      `yaml:"label"`
	Accelerator Accelerator `yaml:"accelerator,omitempty"`
	Scope       Scope       `yaml:"scope"`
}

type EntryKind int

const (
	EntryItem EntryKind = iota
	EntrySeparator
	EntryStandard
)

func (k EntryKind) String() string {
	switch k {
	case EntrySeparator:
		return "separator"
	case EntryStandard:
		return "standard"
	default:
		return "item"
	}
}

func (k EntryKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Entry is one slot of a group: a custom item, a separator or a standard role.
type Entry struct {
	Kind EntryKind `yaml:"kind"`
	Item Item      `yaml:"item,omitempty"`
	Role Role      `yaml:"role,omitempty"`
}

func ItemEntry(item Item) Entry { return Entry{Kind: EntryItem, Item: item} }
func Separator() Entry          { return Entry{Kind: EntrySeparator} }
func Standard(role Role) Entry  { return Entry{Kind: EntryStandard, Role: role} }

type Group struct {
	Title   string  `yaml:"title"`
	Scope   Scope   `yaml:"scope"`
	Entries []Entry `yaml:"entries"`
}

// Bar is the ordered list of groups installed on the main window.
type Bar struct {
	Platform Platform `yaml:"platform"`
	Groups   []Group  `yaml:"groups"`
}

var (
	ErrDuplicateID = errors.New("duplicate menu identifier")
	ErrInvalidID   = errors.New("invalid menu identifier")
	ErrEmptyLabel  = errors.New("empty menu label")
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ItemIDs lists custom identifiers in display order.
func (b Bar) ItemIDs() []string {
	var ids []string
	for _, g := range b.Groups {
		for _, e := range g.Entries {
			if e.Kind == EntryItem {
				ids = append(ids, e.Item.ID)
			}
		}
	}
	return ids
}

// Validate checks identifiers, labels and accelerators.
func (b Bar) Validate() error {
	seen := make(map[string]string)
	for _, g := range b.Groups {
		if g.Title == "" {
			return fmt.Errorf("%w: group title", ErrEmptyLabel)
		}
		for _, e := range g.Entries {
			switch e.Kind {
			case EntryItem:
				if !idPattern.MatchString(e.Item.ID) {
					return fmt.Errorf("%w: %q in %s", ErrInvalidID, e.Item.ID, g.Title)
				}
				if prev, ok := seen[e.Item.ID]; ok {
					return fmt.Errorf("%w: %q in %s and %s", ErrDuplicateID, e.Item.ID, prev, g.Title)
				}
				seen[e.Item.ID] = g.Title
				if e.Item.Label == "" {
					return fmt.Errorf("%w: item %q", ErrEmptyLabel, e.Item.ID)
				}
				if e.Item.Accelerator != "" {
					if _, err := e.Item.Accelerator.Parse(); err != nil {
						return fmt.Errorf("item %q: %w", e.Item.ID, err)
					}
				}
			case EntryStandard:
				if e.Role == "" {
					return fmt.Errorf("standard entry without role in %s", g.Title)
				}
			}
		}
	}
	return nil
}
