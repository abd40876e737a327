package http

import (
	"log/slog"
	"os"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/user"
	"github.com/gymdesk/gymdesk-backend-go/internal/handler/http/middleware"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	JWTService        jwt.Service
	AuthHandler       AuthHandler
	MemberHandler     MemberHandler
	WalkInHandler     WalkInHandler
	StaffHandler      StaffHandler
	AttendanceHandler AttendanceHandler
	LeaveHandler      LeaveBalanceHandler
	AllowedOrigins    []string
	Env               string
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gymdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/refresh", cfg.AuthHandler.RefreshToken)
			r.Post("/logout", cfg.AuthHandler.Logout)
			r.Get("/login/oauth/google", cfg.AuthHandler.LoginWithGoogle)
			r.Get("/oauth/callback/google", cfg.AuthHandler.OAuthCallbackGoogle)

			// Account provisioning is admin-only
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))
				r.Use(middleware.AdminOnly)
				r.Post("/register", cfg.AuthHandler.Register)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))

			r.Route("/members", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionMemberView)).Get("/", cfg.MemberHandler.List)
				r.With(middleware.RequirePermission(user.PermissionMemberView)).Get("/{id}", cfg.MemberHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionMemberManage))
					r.Post("/", cfg.MemberHandler.Create)
					r.Put("/{id}", cfg.MemberHandler.Update)
					r.Delete("/{id}", cfg.MemberHandler.Delete)
				})
			})

			r.Route("/walk-ins", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionWalkInView)).Get("/", cfg.WalkInHandler.List)
				r.With(middleware.RequirePermission(user.PermissionWalkInView)).Get("/follow-ups", cfg.WalkInHandler.FollowUpsDue)
				r.With(middleware.RequirePermission(user.PermissionWalkInView)).Get("/{id}", cfg.WalkInHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionWalkInManage))
					r.Post("/", cfg.WalkInHandler.Create)
					r.Put("/{id}", cfg.WalkInHandler.Update)
					r.Patch("/{id}/status", cfg.WalkInHandler.UpdateStatus)
					r.Delete("/{id}", cfg.WalkInHandler.Delete)
				})
			})

			r.Route("/staff", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionStaffView)).Get("/", cfg.StaffHandler.List)
				r.With(middleware.RequirePermission(user.PermissionStaffView)).Get("/{id}", cfg.StaffHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionStaffManage))
					r.Post("/", cfg.StaffHandler.Create)
					r.Put("/{id}", cfg.StaffHandler.Update)
					r.Delete("/{id}", cfg.StaffHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/", cfg.AttendanceHandler.ListByDate)
				r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/staff/{staffID}", cfg.AttendanceHandler.ListByStaff)
				r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/report", cfg.AttendanceHandler.MonthlyReport)

				r.With(middleware.RequirePermission(user.PermissionAttendanceRecord)).Post("/check-in", cfg.AttendanceHandler.CheckIn)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceManage))
					r.Post("/mark", cfg.AttendanceHandler.Mark)
					r.Post("/leave", cfg.AttendanceHandler.RecordLeave)
					r.Delete("/staff/{staffID}/{date}", cfg.AttendanceHandler.Delete)
				})

				r.Route("/settings", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/", cfg.AttendanceHandler.GetSettings)
					r.With(middleware.RequirePermission(user.PermissionSettingsManage)).Put("/", cfg.AttendanceHandler.UpdateSettings)
				})
			})

			r.Route("/leave-balances", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionAttendanceView)).Get("/{staffID}", cfg.LeaveHandler.Get)
				r.With(middleware.AdminOnly).Put("/{staffID}", cfg.LeaveHandler.SetAllocation)
			})
		})
	})
	return r
}
