//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/networkteam/bakery-e2e/actions"
	"github.com/networkteam/bakery-e2e/bakery"
	"github.com/networkteam/bakery-e2e/fixture"
	"github.com/networkteam/bakery-e2e/report"
	"github.com/networkteam/bakery-e2e/session"
)

// Scenario wraps the shared session for one test. Every helper fails the test
// on error.
type Scenario struct {
	S *session.Session
	t *testing.T
}

// setupScenario resets the browser to a clean login page and writes a failure
// report when the test fails.
func setupScenario(t *testing.T) *Scenario {
	t.Helper()

	require.NoError(t, suite.session.Reset(), "failed to reset session")
	t.Cleanup(func() {
		if t.Failed() {
			writeFailureReport(t)
		}
	})

	return &Scenario{S: suite.session, t: t}
}

// loggedIn sets up a scenario with a freshly registered user on the
// dashboard.
func loggedIn(t *testing.T) (*Scenario, *DashboardPage, fixture.Credentials) {
	t.Helper()

	sc := setupScenario(t)
	creds, err := actions.EstablishSession(sc.S)
	require.NoError(t, err, "failed to establish session")

	return sc, NewDashboardPage(t, sc.S), creds
}

func writeFailureReport(t *testing.T) {
	dir := suite.cfg.ArtifactsDir
	if dir == "" {
		return
	}
	s := suite.session

	r := report.Report{
		Scenario: t.Name(),
		Time:     time.Now(),
		URL:      s.URL(),
		Console:  s.Console(),
		Logs:     suite.logs.Last(200),
	}
	if suite.app != nil {
		r.Requests = suite.app.Requests.Last(100)
	}
	if shot, err := s.Screenshot(); err == nil {
		r.Screenshot = shot
	} else {
		t.Logf("Could not capture screenshot: %v", err)
	}
	if dom, err := s.Content(); err == nil {
		r.DOM = dom
	}

	target, err := r.Write(dir)
	if err != nil {
		t.Logf("Could not write failure report: %v", err)
		return
	}
	t.Logf("Failure report written to %s", target)
}

func (sc *Scenario) Open(page bakery.Page) {
	sc.t.Helper()
	require.NoError(sc.t, sc.S.Open(page), "failed to open %s", page)
}

// Find returns a clickable element.
func (sc *Scenario) Find(id string) *session.Element {
	sc.t.Helper()
	el, err := sc.S.FindClickable(id)
	require.NoError(sc.t, err)
	return el
}

// Present returns an attached element, visible or not.
func (sc *Scenario) Present(id string) *session.Element {
	sc.t.Helper()
	el, err := sc.S.FindPresent(id)
	require.NoError(sc.t, err)
	return el
}

func (sc *Scenario) Click(id string) {
	sc.t.Helper()
	require.NoError(sc.t, sc.Find(id).Click())
}

func (sc *Scenario) Fill(id, value string) {
	sc.t.Helper()
	require.NoError(sc.t, sc.Find(id).Fill(value))
}

// RequireText waits for the element text to contain substr and returns it.
func (sc *Scenario) RequireText(id, substr string) string {
	sc.t.Helper()
	text, err := sc.S.WaitForText(id, substr)
	require.NoError(sc.t, err)
	return text
}

// RequireTextEquals waits for the element text to be exactly want.
func (sc *Scenario) RequireTextEquals(id, want string) {
	sc.t.Helper()
	_, err := sc.S.WaitForTextEquals(id, want)
	require.NoError(sc.t, err)
}

func (sc *Scenario) RequirePage(page bakery.Page) {
	sc.t.Helper()
	require.NoError(sc.t, sc.S.WaitForPage(page), "expected to be on %s", page)
}

// RequireStaysOn fails unless the browser remains on page for duration.
func (sc *Scenario) RequireStaysOn(page bakery.Page, duration time.Duration) {
	sc.t.Helper()
	require.NoError(sc.t, sc.S.StayOnPage(page, duration))
}

func (sc *Scenario) RequireVisible(id string) {
	sc.t.Helper()
	_, err := sc.S.WaitForVisible(id)
	require.NoError(sc.t, err)
}

func (sc *Scenario) RequireHidden(id string) {
	sc.t.Helper()
	require.NoError(sc.t, sc.S.WaitForHidden(id))
}

// RequireClass waits until the element carries (present) or lacks the class.
func (sc *Scenario) RequireClass(id, class string, present bool) {
	sc.t.Helper()
	require.NoError(sc.t, sc.S.WaitForClass(id, class, present))
}

func (sc *Scenario) Value(id string) string {
	sc.t.Helper()
	value, err := sc.Present(id).Value()
	require.NoError(sc.t, err)
	return value
}
