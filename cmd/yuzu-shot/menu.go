package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"yuzu-shot/internal/menu"
	"yuzu-shot/internal/router"
)

var menuFormat string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the menu bar assembled for a platform",
	Long: `Print the menu bar layout for the configured platform (--platform, YUZU_PLATFORM
or the host OS) without starting the GUI.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		bar := menu.Layout(cfg.MenuPlatform())
		if err := bar.Validate(); err != nil {
			return err
		}

		switch menuFormat {
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(bar)
		case "text":
			return renderText(cmd.OutOrStdout(), bar)
		default:
			return fmt.Errorf("unknown format %q (want text or yaml)", menuFormat)
		}
	},
}

func init() {
	menuCmd.Flags().StringVar(&menuFormat, "format", "text", "output format (text|yaml)")
}

var (
	groupStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	roleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))
)

func renderText(w io.Writer, bar menu.Bar) error {
	var b strings.Builder
	fmt.Fprintf(&b, "platform: %s\n", bar.Platform)

	for _, g := range bar.Groups {
		b.WriteString(groupStyle.Render(g.Title))
		b.WriteByte('\n')

		for _, e := range g.Entries {
			switch e.Kind {
			case menu.EntrySeparator:
				b.WriteString("  ────\n")
			case menu.EntryStandard:
				fmt.Fprintf(&b, "  %s\n", roleStyle.Render("<"+string(e.Role)+">"))
			default:
				line := itemStyle.Render(e.Item.Label)
				details := []string{e.Item.ID}
				if e.Item.Accelerator != "" {
					details = append(details, string(e.Item.Accelerator))
				}
				if a := router.Resolve(e.Item.ID); a.Kind == router.ActionOpenURL {
					details = append(details, "opens "+a.URL)
				}
				fmt.Fprintf(&b, "  %s %s\n", line, detailStyle.Render("("+strings.Join(details, ", ")+")"))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
