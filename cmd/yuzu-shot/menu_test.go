package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"yuzu-shot/internal/menu"
	"yuzu-shot/internal/router"
)

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderText(&buf, menu.Layout(menu.Darwin)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "platform: darwin\n"))
	assert.Contains(t, out, "settings, CmdOrCtrl+,")
	assert.Contains(t, out, "export-all, CmdOrCtrl+Shift+E")
	assert.Contains(t, out, "opens "+router.IssueTrackerURL)
	assert.Contains(t, out, "<select-all>")
}

func TestMenuYAML(t *testing.T) {
	out, err := yaml.Marshal(menu.Layout(menu.Linux))
	require.NoError(t, err)

	var decoded struct {
		Platform string `yaml:"platform"`
		Groups   []struct {
			Title   string `yaml:"title"`
			Entries []struct {
				Kind string `yaml:"kind"`
				Item struct {
					ID string `yaml:"id"`
				} `yaml:"item"`
			} `yaml:"entries"`
		} `yaml:"groups"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))

	assert.Equal(t, "linux", decoded.Platform)
	require.Len(t, decoded.Groups, 5)
	assert.Equal(t, "File", decoded.Groups[0].Title)
	assert.Equal(t, "item", decoded.Groups[0].Entries[0].Kind)
	assert.Equal(t, menu.IDNewProject, decoded.Groups[0].Entries[0].Item.ID)
	assert.Equal(t, "separator", decoded.Groups[0].Entries[1].Kind)
}
