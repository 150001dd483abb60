package router

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yuzu-shot/internal/logger"
	"yuzu-shot/internal/menu"
)

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) OpenURL(u *url.URL) error {
	f.opened = append(f.opened, u.String())
	return f.err
}

type emitted struct {
	event   string
	payload string
}

type fakeSurface struct {
	events []emitted
	err    error
}

func (f *fakeSurface) Emit(event, payload string) error {
	f.events = append(f.events, emitted{event, payload})
	return f.err
}

func lookupOf(s *fakeSurface) SurfaceLookup {
	return func(name string) (Emitter, bool) {
		if name != MainSurface || s == nil {
			return nil, false
		}
		return s, true
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Action{Kind: ActionOpenURL, URL: DocumentationURL}, Resolve("documentation"))
	assert.Equal(t, Action{Kind: ActionOpenURL, URL: IssueTrackerURL}, Resolve("report-issue"))
	assert.Equal(t, Action{Kind: ActionOpenURL, URL: WebsiteURL}, Resolve("visit-website"))

	for _, id := range []string{"settings", "new-project", "Documentation", "", "unknown-thing", " report-issue"} {
		assert.Equal(t, Action{Kind: ActionForward}, Resolve(id), id)
	}
}

func TestRouteInterceptedOpensURLOnly(t *testing.T) {
	for id, want := range intercepted {
		t.Run(id, func(t *testing.T) {
			opener := &fakeOpener{}
			surface := &fakeSurface{}
			New(opener, lookupOf(surface), logger.NoOp{}).Route(id)

			assert.Equal(t, []string{want}, opener.opened)
			assert.Empty(t, surface.events)
		})
	}
}

func TestRouteForwardsEverythingElse(t *testing.T) {
	ids := append(menu.Layout(menu.Darwin).ItemIDs(), "future-item", "", "DOCUMENTATION")
	for _, id := range ids {
		if _, ok := intercepted[id]; ok {
			continue
		}
		opener := &fakeOpener{}
		surface := &fakeSurface{}
		New(opener, lookupOf(surface), logger.NoOp{}).Route(id)

		assert.Empty(t, opener.opened, id)
		require.Len(t, surface.events, 1, id)
		assert.Equal(t, emitted{MenuActionEvent, id}, surface.events[0])
	}
}

func TestRouteOpenFailureIsSwallowed(t *testing.T) {
	opener := &fakeOpener{err: errors.New("no browser")}
	surface := &fakeSurface{}
	r := New(opener, lookupOf(surface), logger.NoOp{})

	assert.NotPanics(t, func() { r.Route(menu.IDReportIssue) })
	assert.Equal(t, []string{IssueTrackerURL}, opener.opened)
	assert.Empty(t, surface.events)
}

func TestRouteMissingSurfaceDropsEvent(t *testing.T) {
	opener := &fakeOpener{}
	r := New(opener, lookupOf(nil), logger.NoOp{})

	assert.NotPanics(t, func() { r.Route(menu.IDSettings) })
	assert.Empty(t, opener.opened)

	r = New(opener, nil, nil)
	assert.NotPanics(t, func() { r.Route(menu.IDSettings) })
}

func TestRouteEmitFailureIsSwallowed(t *testing.T) {
	surface := &fakeSurface{err: errors.New("closed")}
	r := New(&fakeOpener{}, lookupOf(surface), logger.NoOp{})

	assert.NotPanics(t, func() { r.Route(menu.IDExportAll) })
	assert.Len(t, surface.events, 1)
}

func TestRouteIsStateless(t *testing.T) {
	opener := &fakeOpener{}
	surface := &fakeSurface{}
	r := New(opener, lookupOf(surface), logger.NoOp{})

	r.Route(menu.IDNewProject)
	r.Route(menu.IDNewProject)
	r.Route(menu.IDDocumentation)

	assert.Equal(t, []emitted{
		{MenuActionEvent, menu.IDNewProject},
		{MenuActionEvent, menu.IDNewProject},
	}, surface.events)
	assert.Equal(t, []string{DocumentationURL}, opener.opened)
}
