// Package ui is the main window content. It owns the meaning of every
// forwarded menu identifier.
package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"yuzu-shot/internal/logger"
	"yuzu-shot/internal/menu"
)

// Listener subscribes to events on a UI surface.
type Listener interface {
	Listen(event string, fn func(payload string)) func()
}

type MainView struct {
	window fyne.Window
	logger logger.Logger

	status      *widget.Label
	list        *widget.List
	screenshots []fyne.URI
	selected    int

	stop func()
}

func NewMainView(window fyne.Window, log logger.Logger) *MainView {
	if log == nil {
		log = logger.NoOp{}
	}
	v := &MainView{
		window:   window,
		logger:   log,
		status:   widget.NewLabel("Ready"),
		selected: -1,
	}

	v.list = widget.NewList(
		func() int { return len(v.screenshots) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(v.screenshots[id].Name())
		},
	)
	v.list.OnSelected = func(id widget.ListItemID) { v.selected = id }

	return v
}

func (v *MainView) Content() fyne.CanvasObject {
	return container.NewBorder(nil, v.status, nil, nil, v.list)
}

// Bind subscribes to event on l. Payloads are handled on the Fyne thread.
func (v *MainView) Bind(l Listener, event string) {
	v.stop = l.Listen(event, func(id string) {
		fyne.Do(func() { v.Interpret(id) })
	})
}

func (v *MainView) Shutdown() {
	if v.stop != nil {
		v.stop()
		v.stop = nil
	}
}

func (v *MainView) Status() string {
	return v.status.Text
}

// Interpret performs the UI action for a forwarded identifier. It must run
// on the Fyne thread.
func (v *MainView) Interpret(id string) {
	v.logger.Debug("MainView", "menu action received", map[string]interface{}{"id": id})

	switch id {
	case menu.IDNewProject:
		v.newProject()
	case menu.IDImportScreenshots:
		v.importScreenshot()
	case menu.IDExportCurrent:
		if v.selected < 0 || v.selected >= len(v.screenshots) {
			v.setStatus("Nothing selected to export")
			return
		}
		v.export(v.screenshots[v.selected : v.selected+1])
	case menu.IDExportAll:
		v.export(v.screenshots)
	case menu.IDSettings:
		dialog.ShowInformation("Settings", "There are no settings to change yet.", v.window)
	default:
		v.logger.Warning("MainView", "unhandled menu action", map[string]interface{}{"id": id})
		v.setStatus(fmt.Sprintf("Unhandled menu action: %s", id))
	}
}

func (v *MainView) newProject() {
	v.screenshots = nil
	v.selected = -1
	v.list.UnselectAll()
	v.list.Refresh()
	v.setStatus("New project")
}

func (v *MainView) importScreenshot() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			v.showError(err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		v.addScreenshot(reader.URI())
	}, v.window)
}

func (v *MainView) addScreenshot(uri fyne.URI) {
	v.screenshots = append(v.screenshots, uri)
	v.list.Refresh()
	v.setStatus(fmt.Sprintf("Imported %s", uri.Name()))
}

func (v *MainView) export(uris []fyne.URI) {
	if len(uris) == 0 {
		v.setStatus("Nothing to export")
		return
	}
	items := append([]fyne.URI(nil), uris...)

	dialog.ShowFolderOpen(func(dir fyne.ListableURI, err error) {
		if err != nil {
			v.showError(err)
			return
		}
		if dir == nil {
			return
		}
		n, err := exportTo(dir, items)
		if err != nil {
			v.showError(err)
		}
		v.setStatus(fmt.Sprintf("Exported %d of %d to %s", n, len(items), dir.Name()))
	}, v.window)
}

// exportTo copies each screenshot into dir and returns how many succeeded.
func exportTo(dir fyne.URI, items []fyne.URI) (int, error) {
	for i, src := range items {
		dst, err := storage.Child(dir, src.Name())
		if err != nil {
			return i, fmt.Errorf("export %s: %w", src.Name(), err)
		}
		if err := storage.Copy(src, dst); err != nil {
			return i, fmt.Errorf("export %s: %w", src.Name(), err)
		}
	}
	return len(items), nil
}

func (v *MainView) setStatus(text string) {
	v.status.SetText(text)
}

func (v *MainView) showError(err error) {
	v.logger.Error("MainView", err, nil)
	dialog.ShowError(err, v.window)
}
