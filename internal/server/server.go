// Package server exposes the journey over HTTP. Visitors are identified by a
// cookie holding a ULID, minted on first contact.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rcliao/aiplayland-journey/internal/journey"
	"github.com/rcliao/aiplayland-journey/internal/logging"
	"github.com/rcliao/aiplayland-journey/internal/metrics"
	"github.com/rcliao/aiplayland-journey/internal/store"
)

const (
	DefaultCookieName       = "aiplayland_visitor"
	DefaultRevealCookieName = "aiplayland_medreception_reveal_session_v1"

	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

type Server struct {
	router           *chi.Mux
	nav              *journey.Navigator
	cookieName       string
	revealCookieName string
	secureCookies    bool
}

type Options func(*Server)

func WithCookieName(name string) Options {
	return func(s *Server) {
		s.cookieName = name
	}
}

func WithRevealCookieName(name string) Options {
	return func(s *Server) {
		s.revealCookieName = name
	}
}

func WithSecureCookies(secure bool) Options {
	return func(s *Server) {
		s.secureCookies = secure
	}
}

func New(nav *journey.Navigator, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:           r,
		nav:              nav,
		cookieName:       DefaultCookieName,
		revealCookieName: DefaultRevealCookieName,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/lanes", s.lanesHandler)
	r.Get("/lanes/{lane}", s.laneHandler)
	r.Get("/modes", s.modesHandler)
	r.Get("/modes/{mode}", s.modeHandler)
	r.Get("/problems", s.problemsHandler)

	r.Group(func(r chi.Router) {
		r.Use(s.visitorMiddleware)
		r.Get("/problems/{slug}", s.problemHandler)
		r.Get("/guide", s.guideHandler)
		r.Get("/choose", s.chooseHandler)
		r.Get("/surprise", s.surpriseHandler)
		r.Get("/memory", s.memoryHandler)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger logs each request and observes its duration by route pattern.
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			d := time.Since(start)
			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			metrics.ObserveRequest(route, ww.Status(), d)
			logging.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", route).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", d).
				Msg("access")
		}()

		next.ServeHTTP(ww, r)
	})
}

type visitorKey struct{}

// visitorMiddleware resolves the visitor cookie, minting a new id when it is
// missing or not a ULID.
func (s *Server) visitorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(s.cookieName); err == nil {
			if _, err := ulid.ParseStrict(c.Value); err == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = store.NewVisitorID()
			http.SetCookie(w, &http.Cookie{
				Name:     s.cookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   visitorCookieMaxAge,
				HttpOnly: true,
				Secure:   s.secureCookies,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), visitorKey{}, id)))
	})
}

// VisitorID returns the visitor resolved by the visitor middleware.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorKey{}).(string)
	return id
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Str("path", r.URL.Path).Msg("failed to marshal response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
