package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rcliao/aiplayland-journey/internal/catalog"
	"github.com/rcliao/aiplayland-journey/internal/journey"
	"github.com/rcliao/aiplayland-journey/internal/model"
)

type pickResponse struct {
	Mode    string          `json:"mode"`
	From    string          `json:"from"`
	Next    string          `json:"next,omitempty"`
	Href    string          `json:"href,omitempty"`
	Related []model.Problem `json:"related,omitempty"`
}

func (s *Server) lanesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, catalog.Lanes())
}

func (s *Server) laneHandler(w http.ResponseWriter, r *http.Request) {
	lane, ok := catalog.Lane(chi.URLParam(r, "lane"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown lane")
		return
	}
	writeJSON(w, r, http.StatusOK, lane)
}

func (s *Server) modesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, catalog.Modes())
}

func (s *Server) modeHandler(w http.ResponseWriter, r *http.Request) {
	mode, ok := catalog.Mode(chi.URLParam(r, "mode"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown mode")
		return
	}
	writeJSON(w, r, http.StatusOK, mode)
}

func (s *Server) problemsHandler(w http.ResponseWriter, r *http.Request) {
	c := s.nav.Recommender().Catalog()
	problems := c.Sorted()
	if q := r.URL.Query().Get("q"); q != "" {
		problems = c.Search(q)
	}
	if lane := r.URL.Query().Get("lane"); lane != "" {
		if !model.ValidLanes[model.Lane(lane)] {
			writeError(w, r, http.StatusBadRequest, "unknown lane")
			return
		}
		problems = filterLane(problems, model.Lane(lane))
	}
	if problems == nil {
		problems = []model.Problem{}
	}
	writeJSON(w, r, http.StatusOK, problems)
}

func filterLane(problems []model.Problem, lane model.Lane) []model.Problem {
	out := []model.Problem{}
	for _, p := range problems {
		if p.Lane == lane {
			out = append(out, p)
		}
	}
	return out
}

// problemHandler opens a problem page. Unknown slugs still render, as a
// placeholder. The medical reveal is shown at most once per browser session.
func (s *Server) problemHandler(w http.ResponseWriter, r *http.Request) {
	view := s.nav.Visit(r.Context(), VisitorID(r.Context()), chi.URLParam(r, "slug"))

	if view.Reveal {
		if _, err := r.Cookie(s.revealCookieName); err == nil {
			view.Reveal = false
		} else {
			http.SetCookie(w, &http.Cookie{
				Name:     s.revealCookieName,
				Value:    "1",
				Path:     "/",
				HttpOnly: true,
				Secure:   s.secureCookies,
				SameSite: http.SameSiteLaxMode,
			})
		}
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) guideHandler(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	next := s.nav.Guide(r.Context(), VisitorID(r.Context()), from)
	writeJSON(w, r, http.StatusOK, pickResponse{
		Mode: journey.ModeGuide,
		From: from,
		Next: next,
		Href: problemHref(next),
	})
}

func (s *Server) chooseHandler(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	related := s.nav.Choose(r.Context(), VisitorID(r.Context()), from)
	if related == nil {
		related = []model.Problem{}
	}
	writeJSON(w, r, http.StatusOK, pickResponse{
		Mode:    journey.ModeChoose,
		From:    from,
		Related: related,
	})
}

func (s *Server) surpriseHandler(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	next := s.nav.Surprise(r.Context(), VisitorID(r.Context()), from)
	writeJSON(w, r, http.StatusOK, pickResponse{
		Mode: journey.ModeSurprise,
		From: from,
		Next: next,
		Href: problemHref(next),
	})
}

func (s *Server) memoryHandler(w http.ResponseWriter, r *http.Request) {
	id := VisitorID(r.Context())
	writeJSON(w, r, http.StatusOK, model.VisitorRecord{
		VisitorID: id,
		Memory:    s.nav.Memory(r.Context(), id),
	})
}

func problemHref(slug string) string {
	return "/problems/" + slug
}
