package main

import (
	"fmt"
	"net/http"

	"github.com/crewroster/roster-backend-go/internal/config"
	appHTTP "github.com/crewroster/roster-backend-go/internal/handler/http"
	"github.com/crewroster/roster-backend-go/internal/pkg/database"
	"github.com/crewroster/roster-backend-go/internal/pkg/jwt"
	"github.com/crewroster/roster-backend-go/internal/pkg/oauth"
	"github.com/crewroster/roster-backend-go/internal/repository/postgresql"
	authService "github.com/crewroster/roster-backend-go/internal/service/auth"
	entitlementService "github.com/crewroster/roster-backend-go/internal/service/entitlement"
	rosterService "github.com/crewroster/roster-backend-go/internal/service/roster"
	shiftService "github.com/crewroster/roster-backend-go/internal/service/shift"
	userService "github.com/crewroster/roster-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	sequenceRepo := postgresql.NewRosterSequenceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	entitlementRepo := postgresql.NewEntitlementRepository(db)
	holidayRepo := postgresql.NewPublicHolidayRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo)
	userSvc := userService.NewUserService(userRepo, sequenceRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, cfg.Policy.Phase)
	entitlementSvc := entitlementService.NewEntitlementService(entitlementRepo, userRepo)
	rosterSvc := rosterService.NewRosterService(userRepo, shiftRepo, holidayRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	userHandler := appHTTP.NewUserHandler(userSvc, shiftSvc, entitlementSvc)
	entitlementHandler := appHTTP.NewEntitlementHandler(entitlementSvc)
	holidayHandler := appHTTP.NewPublicHolidayHandler(holidayRepo)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		rosterHandler,
		shiftHandler,
		userHandler,
		entitlementHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
