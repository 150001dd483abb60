package menu

import "fmt"

// Native is an opaque host primitive produced by a Handle.
type Native interface{}

// Handle constructs native menu primitives for a host shell. A nil Native
// with a nil error means the host has no equivalent and the slot is skipped.
type Handle interface {
	Item(item Item) (Native, error)
	Separator() (Native, error)
	Standard(role Role) (Native, error)
	Group(title string, entries []Native) (Native, error)
	Bar(groups []Native) (Native, error)
}

// MenuBar pairs the declarative layout with the host value ready to install.
type MenuBar struct {
	Layout Bar
	Native Native
}

// Assemble builds the menu bar for p through h. Any handle failure aborts
// assembly; callers treat the error as fatal to startup.
func Assemble(p Platform, h Handle) (MenuBar, error) {
	layout := Layout(p)
	if err := layout.Validate(); err != nil {
		return MenuBar{}, fmt.Errorf("menu layout: %w", err)
	}

	groups := make([]Native, 0, len(layout.Groups))
	for _, g := range layout.Groups {
		entries := make([]Native, 0, len(g.Entries))
		for _, e := range g.Entries {
			n, err := buildEntry(h, e)
			if err != nil {
				return MenuBar{}, fmt.Errorf("menu %s: %w", g.Title, err)
			}
			if n != nil {
				entries = append(entries, n)
			}
		}

		group, err := h.Group(g.Title, entries)
		if err != nil {
			return MenuBar{}, fmt.Errorf("menu %s: %w", g.Title, err)
		}
		if group != nil {
			groups = append(groups, group)
		}
	}

	bar, err := h.Bar(groups)
	if err != nil {
		return MenuBar{}, fmt.Errorf("menu bar: %w", err)
	}
	return MenuBar{Layout: layout, Native: bar}, nil
}

func buildEntry(h Handle, e Entry) (Native, error) {
	switch e.Kind {
	case EntrySeparator:
		return h.Separator()
	case EntryStandard:
		n, err := h.Standard(e.Role)
		if err != nil {
			return nil, fmt.Errorf("standard %s: %w", e.Role, err)
		}
		return n, nil
	default:
		n, err := h.Item(e.Item)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", e.Item.ID, err)
		}
		return n, nil
	}
}
