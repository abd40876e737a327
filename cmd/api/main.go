package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gymdesk/gymdesk-backend-go/internal/config"
	appHTTP "github.com/gymdesk/gymdesk-backend-go/internal/handler/http"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/cron"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/database"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/jwt"
	"github.com/gymdesk/gymdesk-backend-go/internal/pkg/oauth"
	"github.com/gymdesk/gymdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/gymdesk/gymdesk-backend-go/internal/service/attendance"
	authService "github.com/gymdesk/gymdesk-backend-go/internal/service/auth"
	leaveService "github.com/gymdesk/gymdesk-backend-go/internal/service/leave"
	memberService "github.com/gymdesk/gymdesk-backend-go/internal/service/member"
	staffService "github.com/gymdesk/gymdesk-backend-go/internal/service/staff"
	walkinService "github.com/gymdesk/gymdesk-backend-go/internal/service/walkin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Repositories
	userRepository := postgresql.NewUserRepository(db)
	jwtRepository := postgresql.NewJWTRepository(db)
	memberRepository := postgresql.NewMemberRepository(db)
	walkInRepository := postgresql.NewWalkInRepository(db)
	staffRepository := postgresql.NewStaffRepository(db)
	attendanceRepository := postgresql.NewAttendanceRepository(db)
	settingsRepository := postgresql.NewSettingsRepository(db)
	balanceRepository := postgresql.NewBalanceRepository(db)

	// Shared infrastructure
	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleSvc oauth.GoogleService
	if cfg.GoogleLoginEnabled() {
		googleSvc = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	} else {
		slog.Warn("Google login disabled, OAuth2 credentials not configured")
	}

	// Services
	leaveValidator := leaveService.NewValidator()
	authSvc := authService.NewAuthService(db, userRepository, jwtSvc, jwtRepository, googleSvc)
	memberSvc := memberService.NewMemberService(memberRepository)
	walkInSvc := walkinService.NewWalkInService(walkInRepository)
	staffSvc := staffService.NewStaffService(staffRepository)
	balanceSvc := leaveService.NewBalanceService(db, balanceRepository, staffRepository)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepository, settingsRepository, staffRepository, balanceRepository, leaveValidator)
	settingsSvc := attendanceService.NewSettingsService(settingsRepository)

	// Handlers
	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	memberHandler := appHTTP.NewMemberHandler(memberSvc)
	walkInHandler := appHTTP.NewWalkInHandler(walkInSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, settingsSvc)
	leaveHandler := appHTTP.NewLeaveBalanceHandler(balanceSvc)

	// Background jobs
	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepository, settingsRepository, staffRepository, walkInRepository, db).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		JWTService:        jwtSvc,
		AuthHandler:       authHandler,
		MemberHandler:     memberHandler,
		WalkInHandler:     walkInHandler,
		StaffHandler:      staffHandler,
		AttendanceHandler: attendanceHandler,
		LeaveHandler:      leaveHandler,
		AllowedOrigins:    cfg.App.AllowedOrigins,
		Env:               cfg.App.Env,
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Starting server", "addr", addr, "env", cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
