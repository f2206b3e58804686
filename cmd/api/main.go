package main

import (
	"fmt"
	"net/http"

	"github.com/stafftrack/timeclock-backend-go/internal/config"
	appHTTP "github.com/stafftrack/timeclock-backend-go/internal/handler/http"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/database"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/timeclock-backend-go/internal/pkg/oauth"
	"github.com/stafftrack/timeclock-backend-go/internal/repository/postgresql"
	authService "github.com/stafftrack/timeclock-backend-go/internal/service/auth"
	employeeService "github.com/stafftrack/timeclock-backend-go/internal/service/employee"
	privilegeService "github.com/stafftrack/timeclock-backend-go/internal/service/privilege"
	settingsService "github.com/stafftrack/timeclock-backend-go/internal/service/settings"
	timeoffService "github.com/stafftrack/timeclock-backend-go/internal/service/timeoff"
	userService "github.com/stafftrack/timeclock-backend-go/internal/service/user"
	workperiodService "github.com/stafftrack/timeclock-backend-go/internal/service/workperiod"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	privilegeRepo := postgresql.NewPrivilegeRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workPeriodRepo := postgresql.NewWorkPeriodRepository(db)
	dayOffRepo := postgresql.NewDayOffRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, JWTService, GoogleService)
	userSvc := userService.NewUserService(db, userRepo)
	privilegeSvc := privilegeService.NewPrivilegeService(db, privilegeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	workPeriodSvc := workperiodService.NewWorkPeriodService(db, workPeriodRepo, employeeRepo)
	timeOffSvc := timeoffService.NewTimeOffService(db, dayOffRepo, requestRepo)
	settingsSvc := settingsService.NewSettingsService(db, settingsRepo)

	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc),
		User:        appHTTP.NewUserHandler(userSvc),
		Privilege:   appHTTP.NewPrivilegeHandler(privilegeSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		WorkPeriod:  appHTTP.NewWorkPeriodHandler(workPeriodSvc),
		TimeOff:     appHTTP.NewTimeOffHandler(timeOffSvc),
		Application: appHTTP.NewApplicationHandler(applicationRepo),
		Settings:    appHTTP.NewSettingsHandler(settingsSvc),
	}

	router := appHTTP.NewRouter(cfg, JWTService, userRepo, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
