package menu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandle renders every primitive as a string so bars can be compared.
type recordingHandle struct {
	failOn   string
	skipRole Role
}

func (h *recordingHandle) Item(item Item) (Native, error) {
	if h.failOn == item.ID {
		return nil, errors.New("native item failed")
	}
	return fmt.Sprintf("item:%s|%s|%s", item.ID, item.Label, item.Accelerator), nil
}

func (h *recordingHandle) Separator() (Native, error) { return "---", nil }

func (h *recordingHandle) Standard(role Role) (Native, error) {
	if role == h.skipRole {
		return nil, nil
	}
	return "role:" + string(role), nil
}

func (h *recordingHandle) Group(title string, entries []Native) (Native, error) {
	if h.failOn == title {
		return nil, errors.New("native group failed")
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.(string)
	}
	return title + "[" + strings.Join(parts, ",") + "]", nil
}

func (h *recordingHandle) Bar(groups []Native) (Native, error) {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.(string)
	}
	return out, nil
}

func TestAssembleDeterministic(t *testing.T) {
	for _, p := range []Platform{Darwin, Linux} {
		a, err := Assemble(p, &recordingHandle{})
		require.NoError(t, err)
		b, err := Assemble(p, &recordingHandle{})
		require.NoError(t, err)

		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: assemblies differ:\n%s", p, diff)
		}
	}
}

func TestAssembleNativeOrder(t *testing.T) {
	bar, err := Assemble(Linux, &recordingHandle{})
	require.NoError(t, err)

	groups := bar.Native.([]string)
	require.Len(t, groups, 5)
	assert.Equal(t, "Help[item:documentation|Documentation|,item:report-issue|Report Issue|,---,item:visit-website|Visit yuzuhub.com|]", groups[4])
	assert.Equal(t, "View[role:fullscreen]", groups[2])
	assert.Equal(t, Layout(Linux), bar.Layout)
}

func TestAssembleDarwinIncludesAppGroup(t *testing.T) {
	bar, err := Assemble(Darwin, &recordingHandle{})
	require.NoError(t, err)

	groups := bar.Native.([]string)
	require.Len(t, groups, 6)
	assert.True(t, strings.HasPrefix(groups[0], AppName+"[role:about,---,item:settings|Settings…|CmdOrCtrl+,"))
}

func TestAssembleSkipsUnsupportedRoles(t *testing.T) {
	bar, err := Assemble(Linux, &recordingHandle{skipRole: RoleFullscreen})
	require.NoError(t, err)
	assert.Equal(t, "View[]", bar.Native.([]string)[2])
}

func TestAssembleFailsOnPrimitiveError(t *testing.T) {
	_, err := Assemble(Linux, &recordingHandle{failOn: IDExportAll})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "menu File")
	assert.Contains(t, err.Error(), IDExportAll)

	_, err = Assemble(Linux, &recordingHandle{failOn: "Help"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "native group failed")
}
