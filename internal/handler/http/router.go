package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/stafftrack/timeclock-backend-go/internal/config"
	"github.com/stafftrack/timeclock-backend-go/internal/domain/user"
	"github.com/stafftrack/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	User        UserHandler
	Privilege   PrivilegeHandler
	Employee    EmployeeHandler
	WorkPeriod  WorkPeriodHandler
	TimeOff     TimeOffHandler
	Application ApplicationHandler
	Settings    SettingsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, userRepo user.UserRepository, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)
			r.Use(middleware.LoadPrincipal(userRepo))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.User.List)
				r.Post("/", h.User.Create)
				r.Get("/me", h.User.Me)
				r.Get("/{id}", h.User.Get)
				r.Put("/{id}", h.User.Update)
				r.Delete("/{id}", h.User.Delete)
			})

			r.Route("/privileges", func(r chi.Router) {
				r.Get("/", h.Privilege.List)
				r.Post("/", h.Privilege.Create)
				r.Get("/{id}", h.Privilege.Get)
				r.Put("/{id}", h.Privilege.Update)
				r.Delete("/{id}", h.Privilege.Delete)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/terminal", h.Employee.ListForTerminal)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/work-periods", func(r chi.Router) {
				r.Get("/", h.WorkPeriod.List)
				r.Post("/", h.WorkPeriod.Create)
				r.Get("/mine", h.WorkPeriod.Mine)
				r.Get("/latest", h.WorkPeriod.Latest)
				r.Post("/clock-in", h.WorkPeriod.ClockIn)
				r.Get("/{id}", h.WorkPeriod.Get)
				r.Put("/{id}", h.WorkPeriod.Update)
				r.Delete("/{id}", h.WorkPeriod.Delete)
				r.Post("/{id}/clock-out", h.WorkPeriod.ClockOut)
			})

			r.Route("/days-off", func(r chi.Router) {
				r.Get("/", h.TimeOff.ListDaysOff)
				r.Post("/", h.TimeOff.CreateDayOff)
				r.Post("/batch", h.TimeOff.BatchCreateDaysOff)
				r.Post("/delete-batch", h.TimeOff.BatchDeleteDaysOff)
				r.Get("/{id}", h.TimeOff.GetDayOff)
				r.Put("/{id}", h.TimeOff.UpdateDayOff)
				r.Delete("/{id}", h.TimeOff.DeleteDayOff)
			})

			r.Route("/days-off-requests", func(r chi.Router) {
				r.Get("/", h.TimeOff.ListRequests)
				r.Post("/", h.TimeOff.CreateRequest)
				r.Get("/{id}", h.TimeOff.GetRequest)
				r.Put("/{id}", h.TimeOff.UpdateRequest)
				r.Delete("/{id}", h.TimeOff.DeleteRequest)
			})

			r.Route("/applications", func(r chi.Router) {
				r.Get("/", h.Application.List)
				r.Get("/{id}", h.Application.Get)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)
				r.Put("/", h.Settings.Update)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	return r
}
