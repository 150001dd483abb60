package menu

// AppName titles the application identity group.
const AppName = "yuzu.shot"

// Identifiers shared with the router and the UI layer.
const (
	IDSettings          = "settings"
	IDNewProject        = "new-project"
	IDImportScreenshots = "import-screenshots"
	IDExportCurrent     = "export-current"
	IDExportAll         = "export-all"
	IDDocumentation     = "documentation"
	IDReportIssue       = "report-issue"
	IDVisitWebsite      = "visit-website"
)

// Layout returns the menu bar for p. It is a pure function of p.
func Layout(p Platform) Bar {
	groups := []Group{
		{
			Title: AppName,
			Scope: ScopeMacOnly,
			Entries: []Entry{
				Standard(RoleAbout),
				Separator(),
				ItemEntry(Item{ID: IDSettings, Label: "Settings…", Accelerator: "CmdOrCtrl+,"}),
				Separator(),
				Standard(RoleServices),
				Separator(),
				Standard(RoleHide),
				Standard(RoleHideOthers),
				Standard(RoleShowAll),
				Separator(),
				Standard(RoleQuit),
			},
		},
		{
			Title: "File",
			Entries: []Entry{
				ItemEntry(Item{ID: IDNewProject, Label: "New Project", Accelerator: "CmdOrCtrl+N"}),
				Separator(),
				ItemEntry(Item{ID: IDImportScreenshots, Label: "Import Screenshots...", Accelerator: "CmdOrCtrl+O"}),
				Separator(),
				ItemEntry(Item{ID: IDExportCurrent, Label: "Export Current", Accelerator: "CmdOrCtrl+E"}),
				ItemEntry(Item{ID: IDExportAll, Label: "Export All", Accelerator: "CmdOrCtrl+Shift+E"}),
				Separator(),
				Standard(RoleCloseWindow),
			},
		},
		{
			Title: "Edit",
			Entries: []Entry{
				Standard(RoleUndo),
				Standard(RoleRedo),
				Separator(),
				Standard(RoleCut),
				Standard(RoleCopy),
				Standard(RolePaste),
				Separator(),
				Standard(RoleSelectAll),
			},
		},
		{
			Title:   "View",
			Entries: []Entry{Standard(RoleFullscreen)},
		},
		{
			Title: "Window",
			Entries: []Entry{
				Standard(RoleMinimize),
				Standard(RoleMaximize),
				Separator(),
				Standard(RoleCloseWindow),
			},
		},
		{
			Title: "Help",
			Entries: []Entry{
				ItemEntry(Item{ID: IDDocumentation, Label: "Documentation"}),
				ItemEntry(Item{ID: IDReportIssue, Label: "Report Issue"}),
				Separator(),
				ItemEntry(Item{ID: IDVisitWebsite, Label: "Visit yuzuhub.com"}),
			},
		},
	}

	bar := Bar{Platform: p}
	for _, g := range groups {
		if !g.Scope.Includes(p) {
			continue
		}
		entries := make([]Entry, 0, len(g.Entries))
		for _, e := range g.Entries {
			if e.Kind == EntryItem && !e.Item.Scope.Includes(p) {
				continue
			}
			entries = append(entries, e)
		}
		g.Entries = entries
		bar.Groups = append(bar.Groups, g)
	}
	return bar
}
