package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/gt"

	"github.com/rcliao/aiplayland-journey/internal/catalog"
	"github.com/rcliao/aiplayland-journey/internal/journey"
	"github.com/rcliao/aiplayland-journey/internal/model"
	"github.com/rcliao/aiplayland-journey/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.MemStore) {
	t.Helper()
	s := store.NewMemStore()
	nav := journey.NewNavigator(journey.New(catalog.Default()), store.NewRecorder(s))
	return New(nav), s
}

// client replays cookies the server sets, like a browser tab.
type client struct {
	t       *testing.T
	srv     http.Handler
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, srv http.Handler) *client {
	return &client{t: t, srv: srv, cookies: map[string]*http.Cookie{}}
}

func (c *client) get(path string, out any) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.srv.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	if out != nil {
		gt.NoError(c.t, json.Unmarshal(w.Body.Bytes(), out)).Required()
	}
	return w
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	w := newClient(t, srv).get("/healthz", nil)
	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.String(t, w.Body.String()).Contains(`"ok"`)
}

func TestProblemsList(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newClient(t, srv)

	var all []model.Problem
	gt.Value(t, c.get("/problems", &all).Code).Equal(http.StatusOK)
	gt.Array(t, all).Length(27)
	gt.Value(t, all[0].Slug).Equal("after-hours-panic")

	var school []model.Problem
	c.get("/problems?lane=school", &school)
	gt.Array(t, school).Length(6)

	var none []model.Problem
	c.get("/problems?q=zzz", &none)
	gt.Array(t, none).Length(0)

	gt.Value(t, c.get("/problems?lane=space", nil).Code).Equal(http.StatusBadRequest)
}

func TestProblemsListSetsNoVisitor(t *testing.T) {
	srv, s := newTestServer(t)
	w := newClient(t, srv).get("/problems", nil)
	gt.Array(t, w.Result().Cookies()).Length(0)
	gt.Value(t, s.Len()).Equal(0)
}

func TestLanesAndModes(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newClient(t, srv)

	var lanes []model.LaneContent
	c.get("/lanes", &lanes)
	gt.Array(t, lanes).Length(5)

	gt.Value(t, c.get("/lanes/business", nil).Code).Equal(http.StatusOK)
	gt.Value(t, c.get("/lanes/space", nil).Code).Equal(http.StatusNotFound)

	var modes []model.Mode
	c.get("/modes", &modes)
	gt.Array(t, modes).Length(3)

	gt.Value(t, c.get("/modes/explore", nil).Code).Equal(http.StatusOK)
	gt.Value(t, c.get("/modes/nap", nil).Code).Equal(http.StatusNotFound)
}

func TestVisitorCookie(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newClient(t, srv)

	c.get("/memory", nil)
	ck, ok := c.cookies[DefaultCookieName]
	gt.Bool(t, ok).True()
	gt.Value(t, len(ck.Value)).Equal(26)
	gt.Bool(t, ck.HttpOnly).True()

	// a known visitor keeps their id
	w := c.get("/memory", nil)
	gt.Array(t, w.Result().Cookies()).Length(0)

	// a tampered id is replaced
	c.cookies[DefaultCookieName] = &http.Cookie{Name: DefaultCookieName, Value: "not-a-ulid"}
	c.get("/memory", nil)
	gt.Value(t, c.cookies[DefaultCookieName].Value).NotEqual("not-a-ulid")
}

func TestJourney(t *testing.T) {
	srv, s := newTestServer(t)
	c := newClient(t, srv)

	var view journey.ProblemView
	gt.Value(t, c.get("/problems/missed-calls", &view).Code).Equal(http.StatusOK)
	gt.Value(t, view.Problem.Slug).Equal("missed-calls")
	gt.Value(t, view.UpsellURL).Equal("https://medreception.ai/missed-calls-medical")
	gt.Bool(t, view.Reveal).False()
	gt.Value(t, s.Len()).Equal(1)

	var guided pickResponse
	c.get("/guide?from=missed-calls", &guided)
	gt.Value(t, guided.Mode).Equal("guide")
	gt.Value(t, guided.Next).Equal("voicemail")
	gt.Value(t, guided.Href).Equal("/problems/voicemail")

	// first eligible page after a guided pick reveals, once per session
	var voicemail journey.ProblemView
	c.get("/problems/voicemail", &voicemail)
	gt.Bool(t, voicemail.Reveal).True()
	_, revealed := c.cookies[DefaultRevealCookieName]
	gt.Bool(t, revealed).True()

	var again journey.ProblemView
	c.get("/problems/voicemail", &again)
	gt.Bool(t, again.Reveal).False()
	gt.Value(t, again.UpsellURL).Equal("https://medreception.ai/voicemail-management")

	var chosen pickResponse
	c.get("/choose?from=voicemail", &chosen)
	gt.Array(t, chosen.Related).Length(5)

	var surprised pickResponse
	c.get("/surprise?from=missed-calls", &surprised)
	gt.Value(t, surprised.Next).Equal("homework-stress")

	var rec model.VisitorRecord
	c.get("/memory", &rec)
	gt.Value(t, rec.VisitorID).Equal(c.cookies[DefaultCookieName].Value)
	gt.Value(t, rec.Memory.VisitedSlugs).Equal([]string{"missed-calls", "voicemail"})
	gt.Value(t, rec.Memory.GuidedUses).Equal(1)
	gt.Value(t, rec.Memory.ManualChooseUses).Equal(1)
	gt.Value(t, rec.Memory.SurpriseUses).Equal(1)
	gt.Value(t, rec.Memory.ArchetypeCounts).Equal(map[string]int{"dissolution": 2})
}

func TestUnknownProblemRendersPlaceholder(t *testing.T) {
	srv, _ := newTestServer(t)

	var view journey.ProblemView
	w := newClient(t, srv).get("/problems/printer-jams", &view)
	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, view.Problem.Label).Equal("Printer Jams")
	gt.Value(t, view.Problem.Lane).Equal(model.LaneCuriosity)
	gt.Value(t, view.UpsellURL).Equal("")
}

func TestCorruptMemoryStillServes(t *testing.T) {
	srv, s := newTestServer(t)
	c := newClient(t, srv)
	c.get("/memory", nil)
	s.SetRaw(c.cookies[DefaultCookieName].Value, []byte("{not json"))

	var guided pickResponse
	w := c.get("/guide?from=test-anxiety", &guided)
	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.Value(t, guided.Next).Equal("falling-behind")
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	c := newClient(t, srv)
	c.get("/healthz", nil)

	w := c.get("/metrics", nil)
	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(w.Body.String(), "journey_http_request_duration_seconds")).True()
}

func TestCustomCookieName(t *testing.T) {
	s := store.NewMemStore()
	nav := journey.NewNavigator(journey.New(catalog.Default()), store.NewRecorder(s))
	srv := New(nav, WithCookieName("vid"), WithSecureCookies(true))

	c := newClient(t, srv)
	c.get("/memory", nil)
	ck, ok := c.cookies["vid"]
	gt.Bool(t, ok).True()
	gt.Bool(t, ck.Secure).True()
}
