// Package shell implements the menu Handle on top of Fyne and installs the
// assembled menu bar on the main window.
package shell

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"yuzu-shot/internal/logger"
	"yuzu-shot/internal/menu"
)

// Handle builds Fyne menu primitives. Custom items report activation
// through the activate callback; standard roles are handled here and never
// reach it.
type Handle struct {
	app      fyne.App
	window   fyne.Window
	platform menu.Platform
	activate func(id string)
	logger   logger.Logger
}

func NewHandle(app fyne.App, window fyne.Window, platform menu.Platform, activate func(id string), log logger.Logger) *Handle {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Handle{
		app:      app,
		window:   window,
		platform: platform,
		activate: activate,
		logger:   log,
	}
}

func (h *Handle) Item(item menu.Item) (menu.Native, error) {
	id := item.ID
	fire := func() {
		if h.activate != nil {
			h.activate(id)
		}
	}
	mi := fyne.NewMenuItem(item.Label, fire)

	if item.Accelerator != "" {
		sc, err := Shortcut(item.Accelerator)
		if err != nil {
			return nil, err
		}
		// Shortcut on the item is display only when Fyne draws the menu
		// bar itself, so the canvas gets the binding too.
		mi.Shortcut = sc
		h.window.Canvas().AddShortcut(sc, func(fyne.Shortcut) { fire() })
	}
	return mi, nil
}

func (h *Handle) Separator() (menu.Native, error) {
	return fyne.NewMenuItemSeparator(), nil
}

// Standard maps a role to the closest Fyne behaviour. Roles Fyne cannot
// express return nil and are left out of the menu.
//
// On macOS Fyne owns the application menu: it supplies Hide and Quit, and
// moves items labelled "About" or "Settings…" into it. Everything else in
// the identity group would end up in a duplicate menu.
func (h *Handle) Standard(role menu.Role) (menu.Native, error) {
	native := h.platform.HasAppMenu()

	switch role {
	case menu.RoleAbout:
		if native {
			return fyne.NewMenuItem("About", h.showAbout), nil
		}
		return fyne.NewMenuItem("About "+menu.AppName, h.showAbout), nil
	case menu.RoleQuit, menu.RoleHide:
		if native {
			return nil, nil
		}
		return h.appItem(role), nil
	case menu.RoleCloseWindow:
		return fyne.NewMenuItem("Close Window", h.window.Close), nil
	case menu.RoleUndo:
		return h.shortcutItem("Undo", &fyne.ShortcutUndo{}), nil
	case menu.RoleRedo:
		return h.shortcutItem("Redo", &fyne.ShortcutRedo{}), nil
	case menu.RoleCut:
		return h.shortcutItem("Cut", &fyne.ShortcutCut{Clipboard: h.window.Clipboard()}), nil
	case menu.RoleCopy:
		return h.shortcutItem("Copy", &fyne.ShortcutCopy{Clipboard: h.window.Clipboard()}), nil
	case menu.RolePaste:
		return h.shortcutItem("Paste", &fyne.ShortcutPaste{Clipboard: h.window.Clipboard()}), nil
	case menu.RoleSelectAll:
		return h.shortcutItem("Select All", &fyne.ShortcutSelectAll{}), nil
	case menu.RoleFullscreen:
		return fyne.NewMenuItem("Toggle Full Screen", func() {
			h.window.SetFullScreen(!h.window.FullScreen())
		}), nil
	case menu.RoleServices, menu.RoleHideOthers, menu.RoleShowAll, menu.RoleMinimize, menu.RoleMaximize:
		h.logger.Debug("MenuHandle", "standard role not supported by toolkit", map[string]interface{}{
			"role": string(role),
		})
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown standard role %q", role)
	}
}

func (h *Handle) Group(title string, entries []menu.Native) (menu.Native, error) {
	items := make([]*fyne.MenuItem, 0, len(entries))
	for _, e := range entries {
		mi, ok := e.(*fyne.MenuItem)
		if !ok {
			return nil, fmt.Errorf("menu %s: unexpected entry type %T", title, e)
		}
		items = append(items, mi)
	}
	return fyne.NewMenu(title, tidySeparators(items)...), nil
}

func (h *Handle) Bar(groups []menu.Native) (menu.Native, error) {
	menus := make([]*fyne.Menu, 0, len(groups))
	for _, g := range groups {
		m, ok := g.(*fyne.Menu)
		if !ok {
			return nil, fmt.Errorf("unexpected menu type %T", g)
		}
		menus = append(menus, m)
	}
	return fyne.NewMainMenu(menus...), nil
}

func (h *Handle) appItem(role menu.Role) *fyne.MenuItem {
	if role == menu.RoleHide {
		return fyne.NewMenuItem("Hide "+menu.AppName, h.window.Hide)
	}
	mi := fyne.NewMenuItem("Quit "+menu.AppName, h.app.Quit)
	mi.IsQuit = true
	return mi
}

// shortcutItem forwards a standard editing shortcut to the focused widget.
func (h *Handle) shortcutItem(label string, sc fyne.Shortcut) *fyne.MenuItem {
	return fyne.NewMenuItem(label, func() {
		if target, ok := h.window.Canvas().Focused().(fyne.Shortcutable); ok {
			target.TypedShortcut(sc)
		}
	})
}

func (h *Handle) showAbout() {
	meta := h.app.Metadata()
	version := meta.Version
	if version == "" {
		version = "dev"
	}
	dialog.ShowInformation("About "+menu.AppName, fmt.Sprintf("%s %s", menu.AppName, version), h.window)
}

// tidySeparators drops leading, trailing and repeated separators left
// behind by skipped roles.
func tidySeparators(items []*fyne.MenuItem) []*fyne.MenuItem {
	out := make([]*fyne.MenuItem, 0, len(items))
	for _, mi := range items {
		if mi.IsSeparator && (len(out) == 0 || out[len(out)-1].IsSeparator) {
			continue
		}
		out = append(out, mi)
	}
	for len(out) > 0 && out[len(out)-1].IsSeparator {
		out = out[:len(out)-1]
	}
	return out
}

// Shortcut converts an accelerator to a Fyne shortcut. The primary
// modifier is Super on macOS and Control elsewhere.
func Shortcut(a menu.Accelerator) (*desktop.CustomShortcut, error) {
	chord, err := a.Parse()
	if err != nil {
		return nil, err
	}

	var mod fyne.KeyModifier
	if chord.Primary {
		mod |= fyne.KeyModifierShortcutDefault
	}
	if chord.Shift {
		mod |= fyne.KeyModifierShift
	}
	if chord.Alt {
		mod |= fyne.KeyModifierAlt
	}
	return &desktop.CustomShortcut{KeyName: fyne.KeyName(chord.Key), Modifier: mod}, nil
}
