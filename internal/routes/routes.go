package routes

import (
	"net/http"

	"github.com/thrivelog/thrivelog/internal/app"
	"github.com/thrivelog/thrivelog/internal/handler"
	"github.com/thrivelog/thrivelog/internal/middleware"
	"github.com/thrivelog/thrivelog/internal/render"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.Cfg)
	habit := handler.NewHabitHandler(app.HabitService)
	mbti := handler.NewMBTIHandler(app.MBTIService, app.RecommendationService)
	journal := handler.NewJournalHandler(app.JournalService)
	recommendation := handler.NewRecommendationHandler(app.RecommendationService)
	user := handler.NewUserHandler(app.UserService)
	status := handler.NewStatusHandler(app.StatusService, app.DB)

	// Rate limits
	authLimit := middleware.RateLimitAuth()
	aiLimit := middleware.RateLimitUser(middleware.NewRateLimiter(app.Cfg.AIRateLimit, app.Cfg.AIRateWindow))

	// protected requires a user; ai additionally applies the per-user AI limit
	protected := middleware.RequireAuth
	ai := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAuth(aiLimit(h))
	}

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", status.Health)

	// Auth (Auth0 authorization code flow, rate limited)
	mux.HandleFunc("GET /auth/login", authLimit(auth.Login))
	mux.HandleFunc("GET /auth/callback", authLimit(auth.Callback))
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("GET /auth/me", protected(auth.Me))

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	// Habits
	mux.HandleFunc("GET /api/habits", protected(habit.List))
	mux.HandleFunc("POST /api/habits", protected(habit.Create))
	mux.HandleFunc("GET /api/habits/{id}", protected(habit.Get))
	mux.HandleFunc("POST /api/habits/{id}/track", protected(habit.Track))
	mux.HandleFunc("POST /api/habits/{id}/deactivate", protected(habit.Deactivate))

	// MBTI
	mux.HandleFunc("GET /api/quiz/questions", protected(mbti.Questions))
	mux.HandleFunc("POST /api/quiz/submit", protected(mbti.Submit))
	mux.HandleFunc("GET /api/mbti", protected(mbti.Profile))
	mux.HandleFunc("POST /api/mbti/insights", ai(mbti.Insights))

	// Journal
	mux.HandleFunc("GET /api/journal", protected(journal.List))
	mux.HandleFunc("POST /api/journal", ai(journal.Create))
	mux.HandleFunc("POST /api/journal/import", ai(journal.Import))
	mux.HandleFunc("GET /api/journal/sentiment", protected(journal.Sentiment))
	mux.HandleFunc("GET /api/journal/prompt", ai(journal.Prompt))
	mux.HandleFunc("GET /api/journal/{id}", protected(journal.Get))
	mux.HandleFunc("POST /api/journal/{id}/analyze", ai(journal.Analyze))

	// Recommendations
	mux.HandleFunc("GET /api/recommendations", ai(recommendation.Recommendations))

	// User
	mux.HandleFunc("GET /api/user/profile", protected(user.Profile))

	// AI
	mux.HandleFunc("GET /api/ai/status", ai(status.AIStatus))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", func(w http.ResponseWriter, r *http.Request) {
		render.ErrorMessage(w, http.StatusNotFound, render.CodeNotFound, "route not found")
	})

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.Recover,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService),
	)
}
