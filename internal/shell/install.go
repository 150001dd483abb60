package shell

import (
	"fmt"

	"fyne.io/fyne/v2"

	"yuzu-shot/internal/menu"
)

// Install sets the assembled bar as the window's main menu.
func Install(window fyne.Window, bar menu.MenuBar) error {
	mm, ok := bar.Native.(*fyne.MainMenu)
	if !ok || mm == nil {
		return fmt.Errorf("install menu: expected *fyne.MainMenu, got %T", bar.Native)
	}
	window.SetMainMenu(mm)
	return nil
}
