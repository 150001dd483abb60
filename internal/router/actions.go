package router

import "yuzu-shot/internal/menu"

const (
	DocumentationURL = "https://github.com/YUZU-Hub/appscreen"
	IssueTrackerURL  = "https://github.com/YUZU-Hub/appscreen/issues"
	WebsiteURL       = "https://yuzuhub.com/en"
)

type ActionKind int

const (
	ActionForward ActionKind = iota
	ActionOpenURL
)

func (k ActionKind) String() string {
	if k == ActionOpenURL {
		return "open-url"
	}
	return "forward"
}

// Action is the routing decision for one identifier.
type Action struct {
	Kind ActionKind
	URL  string
}

var intercepted = map[string]string{
	menu.IDDocumentation: DocumentationURL,
	menu.IDReportIssue:   IssueTrackerURL,
	menu.IDVisitWebsite:  WebsiteURL,
}

// Resolve maps an identifier to its action. Matching is exact and
// case-sensitive; anything not intercepted is forwarded.
func Resolve(id string) Action {
	if u, ok := intercepted[id]; ok {
		return Action{Kind: ActionOpenURL, URL: u}
	}
	return Action{Kind: ActionForward}
}
