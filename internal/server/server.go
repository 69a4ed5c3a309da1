package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"tailscale.com/client/local"

	"github.com/claude/periodize/internal/analytics"
	"github.com/claude/periodize/internal/program"
	"github.com/claude/periodize/internal/recovery"
	"github.com/claude/periodize/internal/storage"
	"github.com/claude/periodize/internal/volume"
	"github.com/claude/periodize/internal/workout"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db           *storage.DB
	programs     *program.Service
	volume       *volume.Service
	workouts     *workout.Service
	recovery     *recovery.Service
	analytics    *analytics.Service
	log          *slog.Logger
	apiKey       string
	defaultLogin string
	tsClient     *local.Client
	router       chi.Router
}

// New creates a new Server with all routes configured. defaultLogin is the
// identity used for requests when no Tailscale client is attached.
func New(db *storage.DB, apiKey, defaultLogin string, log *slog.Logger) *Server {
	s := &Server{
		db:           db,
		programs:     program.NewService(db, log),
		volume:       volume.NewService(db, log),
		workouts:     workout.NewService(db, log),
		recovery:     recovery.NewService(db, log),
		analytics:    analytics.NewService(db, log),
		log:          log,
		apiKey:       apiKey,
		defaultLogin: defaultLogin,
		router:       chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetTailscale attaches the tsnet local client used to resolve request
// identity.
func (s *Server) SetTailscale(lc *local.Client) {
	s.tsClient = lc
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Read endpoints (no auth — tsnet handles access)
		r.Get("/programs", s.handleActiveProgram)
		r.Get("/programs/{id}", s.handleGetProgram)
		r.Get("/programs/{id}/volume", s.handleProgramVolume)
		r.Get("/program-exercises", s.handleListProgramExercises)
		r.Get("/exercises", s.handleListExercises)
		r.Get("/exercises/{id}", s.handleGetExercise)
		r.Get("/workouts", s.handleListWorkouts)
		r.Get("/workouts/{id}", s.handleGetWorkout)
		r.Get("/workouts/{id}/sets", s.handleListSets)
		r.Get("/analytics/volume-current-week", s.handleCurrentWeekVolume)
		r.Get("/analytics/volume-trends", s.handleVolumeTrends)
		r.Get("/analytics/program-volume-analysis", s.handleProgramVolumeAnalysis)
		r.Get("/analytics/1rm-progression", s.handleOneRMProgression)
		r.Get("/analytics/consistency-metrics", s.handleConsistencyMetrics)
		r.Get("/recovery-assessments", s.handleGetRecoveryAssessment)

		// Write endpoints (API key required)
		r.Group(func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/programs", s.handleCreateDefaultProgram)
			r.Patch("/programs/{id}/advance-phase", s.handleAdvancePhase)
			r.Post("/program-exercises", s.handleCreateProgramExercise)
			r.Patch("/program-exercises/batch-reorder", s.handleBatchReorder)
			r.Patch("/program-exercises/{id}", s.handleUpdateProgramExercise)
			r.Delete("/program-exercises/{id}", s.handleDeleteProgramExercise)
			r.Put("/program-exercises/{id}/swap", s.handleSwapProgramExercise)
			r.Post("/workouts", s.handleCreateWorkout)
			r.Patch("/workouts/{id}/status", s.handleUpdateWorkoutStatus)
			r.Post("/workouts/{id}/sets", s.handleLogSet)
			r.Post("/recovery-assessments", s.handleCreateRecoveryAssessment)
		})
	})
}

// userID resolves the requesting user. With Tailscale attached the peer's
// login identifies the user; otherwise the configured local identity is
// used. Users are created on first sight.
func (s *Server) userID(r *http.Request) (int, error) {
	login := s.defaultLogin
	display := ""
	if s.tsClient != nil {
		who, err := s.tsClient.WhoIs(r.Context(), r.RemoteAddr)
		if err == nil && who.UserProfile != nil {
			login = who.UserProfile.LoginName
			display = who.UserProfile.DisplayName
		}
	}
	return s.db.GetOrCreateUser(r.Context(), login, display)
}
