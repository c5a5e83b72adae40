package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/beetracker-backend/internal/config"
	"github.com/heartmarshall/beetracker-backend/internal/transport/middleware"
	"github.com/heartmarshall/beetracker-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// routerDeps is everything the HTTP surface needs.
type routerDeps struct {
	logger  *slog.Logger
	cors    config.CORSConfig
	limits  config.RateLimitConfig
	limiter *middleware.RateLimiter
	tokens  tokenValidator
	health  *rest.HealthHandler
	auth    *rest.AuthHandler
	game    *rest.GameHandler
}

// newRouter registers every route and wraps the mux in the global chain.
// Auth runs before Logger so request lines carry the user id.
func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.health.Live)
	mux.HandleFunc("GET /ready", d.health.Ready)
	mux.HandleFunc("GET /health", d.health.Health)

	mux.Handle("POST /auth/anonymous",
		d.limiter.Limit("auth", d.limits.AuthPerMinute)(http.HandlerFunc(d.auth.SignInAnonymous)))

	mux.HandleFunc("POST /api/hints/parse", d.game.Parse)

	user := func(h http.HandlerFunc) http.Handler { return middleware.RequireUser(h) }
	ocr := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(middleware.RequireUser, d.limiter.Limit("ocr", d.limits.OCRPerMinute))(h)
	}

	mux.Handle("GET /api/session", user(d.game.Progress))
	mux.Handle("DELETE /api/session", user(d.game.DeleteSession))
	mux.Handle("PUT /api/session/hints", user(d.game.LoadHints))
	mux.Handle("PUT /api/session/hints/image", ocr(d.game.LoadHintsFromImage))
	mux.Handle("POST /api/session/words", user(d.game.SubmitWords))
	mux.Handle("POST /api/session/words/image", ocr(d.game.SubmitScreenshot))
	mux.Handle("DELETE /api/session/words/{word}", user(d.game.RemoveWord))
	mux.Handle("POST /api/session/reset", user(d.game.ResetWords))

	return middleware.Chain(
		middleware.Recovery(d.logger),
		middleware.RequestID(),
		middleware.CORS(d.cors),
		middleware.Auth(d.tokens),
		middleware.Logger(d.logger),
	)(mux)
}
