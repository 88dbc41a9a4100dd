package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/communehq/commune/internal/application/auth"
	"github.com/communehq/commune/internal/application/org"
	"github.com/communehq/commune/internal/application/user"
	"github.com/communehq/commune/internal/config"
	httprouter "github.com/communehq/commune/internal/infrastructure/http"
	"github.com/communehq/commune/internal/infrastructure/http/handlers"
	"github.com/communehq/commune/internal/infrastructure/http/middleware"
	"github.com/communehq/commune/internal/infrastructure/identity"
	"github.com/communehq/commune/internal/infrastructure/persistence/db"
	"github.com/communehq/commune/internal/infrastructure/persistence/postgres"
	"github.com/communehq/commune/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	queries := db.New(pool)
	userRepo := postgres.NewUserRepository(queries)
	orgRepo := postgres.NewOrganisationRepository(queries, pool)

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})
	issuer := identity.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	createOrgUC := org.NewCreate(orgRepo)
	orgQueryUC := org.NewQuery(orgRepo)
	addMemberUC := org.NewAddMember(orgRepo, userRepo)
	registerUC := auth.NewRegister(userRepo, createOrgUC, hasher, issuer)
	loginUC := auth.NewLogin(userRepo, hasher, issuer)
	getProfileUC := user.NewGetProfile(userRepo, orgRepo)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, log)
	usersHandler := handlers.NewUsersHandler(getProfileUC, log)
	orgsHandler := handlers.NewOrganisationsHandler(createOrgUC, orgQueryUC, addMemberUC, log)
	healthHandler := handlers.NewHealthHandler(pool)

	requireAuth := middleware.NewAuthValidator(issuer, userRepo, log).Handler
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:          authHandler,
		UsersHandler:         usersHandler,
		OrganisationsHandler: orgsHandler,
		HealthHandler:        healthHandler,
		RequireAuth:          requireAuth,
		Log:                  log,
		Secure:               secureMiddleware,
		CORS:                 middleware.CORS(cfg.CORS.AllowedOrigins, nil, nil),
		Metrics:              true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
