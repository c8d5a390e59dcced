package handlers

import (
	"net/http"
	"time"

	"github.com/a2sh3r/banshi-admin/internal/middleware"
	"github.com/a2sh3r/banshi-admin/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	authService       service.AuthService
	dashboardService  service.DashboardService
	gameService       service.GameService
	userService       service.UserService
	withdrawalService service.WithdrawalService
	journalService    service.JournalService
	validate          *validator.Validate
	loc               *time.Location
}

type Services struct {
	Auth        service.AuthService
	Dashboard   service.DashboardService
	Games       service.GameService
	Users       service.UserService
	Withdrawals service.WithdrawalService
	Journal     service.JournalService
}

// NewHandler builds the console handlers. Game times in requests are read as wall-clock times in loc.
func NewHandler(s Services, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		authService:       s.Auth,
		dashboardService:  s.Dashboard,
		gameService:       s.Games,
		userService:       s.Users,
		withdrawalService: s.Withdrawals,
		journalService:    s.Journal,
		validate:          validator.New(validator.WithRequiredStructEnabled()),
		loc:               loc,
	}
}

func NewRouter(handler *Handler, secretKey string, limiter *middleware.ClientLimiter) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.WithGzip())

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Invalid URL format")
	})

	r.Route("/api/console", func(r chi.Router) {
		r.With(middleware.RateLimitMiddleware(limiter)).Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))
			r.Use(middleware.RateLimitMiddleware(limiter))

			r.Get("/dashboard", handler.GetDashboard)

			r.Route("/games", func(r chi.Router) {
				r.Get("/", handler.ListGames)
				r.Post("/", handler.CreateGame)
				r.Get("/window", handler.GetGameWindow)
				r.Put("/result", handler.DeclareResult)
				r.Delete("/{gameID}", handler.DeleteGame)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", handler.ListUsers)
				r.Delete("/{userID}", handler.DeleteUser)
			})

			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", handler.ListWithdrawals)
				r.Post("/{withdrawalID}/decision", handler.DecideWithdrawal)
			})

			r.Get("/journal", handler.GetJournal)
		})
	})

	return r
}
