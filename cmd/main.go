package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/annotatehub/annotation-backend/internal/db"
	"github.com/annotatehub/annotation-backend/internal/handlers"
	"github.com/annotatehub/annotation-backend/internal/jwt"
	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/middlewares"
	"github.com/annotatehub/annotation-backend/internal/repositories"
	"github.com/annotatehub/annotation-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title annotation-backend API
// @version 1.0.0
// @description Backend for a translation/annotation platform: users, projects, sentences, translations, recordings and per-project roles.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		migrationsDir, logLevel,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		migrationsDir, logLevel,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	migrationsDir, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}
	migrationsDir = getEnv("MIGRATIONS_DIR", "migrations")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger and database, wires repositories, services and
// handlers, sets up routes, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	migrationsDir, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	sqlxDB, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer sqlxDB.Close()
	sqlxDB.SetMaxOpenConns(pgMaxOpenConns)
	sqlxDB.SetMaxIdleConns(pgMaxIdleConns)
	if err := sqlxDB.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply schema migrations
	if err := db.RunMigrations(migrationsDir, dsn); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Initialize JWT service
	tokenSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(sqlxDB)
	userWriteRepo := repositories.NewUserWriteRepository(sqlxDB)
	projectReadRepo := repositories.NewProjectReadRepository(sqlxDB)
	projectWriteRepo := repositories.NewProjectWriteRepository(sqlxDB)
	sentenceReadRepo := repositories.NewSentenceReadRepository(sqlxDB)
	sentenceWriteRepo := repositories.NewSentenceWriteRepository(sqlxDB)
	translationReadRepo := repositories.NewTranslationReadRepository(sqlxDB)
	translationWriteRepo := repositories.NewTranslationWriteRepository(sqlxDB)
	recordingReadRepo := repositories.NewRecordingReadRepository(sqlxDB)
	recordingWriteRepo := repositories.NewRecordingWriteRepository(sqlxDB)
	roleReadRepo := repositories.NewRoleReadRepository(sqlxDB)
	roleWriteRepo := repositories.NewRoleWriteRepository(sqlxDB)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenSvc)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	projectService := services.NewProjectService(projectReadRepo, projectWriteRepo)
	sentenceService := services.NewSentenceService(projectReadRepo, sentenceReadRepo, sentenceWriteRepo)
	translationService := services.NewTranslationService(projectReadRepo, sentenceReadRepo, translationReadRepo, translationWriteRepo)
	recordingService := services.NewRecordingService(projectReadRepo, sentenceReadRepo, recordingReadRepo, recordingWriteRepo)
	roleService := services.NewRoleService(projectReadRepo, userReadRepo, roleReadRepo, roleWriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Post("/users/", handlers.NewRegisterUserHandler(authService))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokenSvc))

		r.Get("/users/", handlers.NewListUsersHandler(userService))
		r.Get("/users/{username}/", handlers.NewGetUserHandler(userService))
		r.Put("/users/{username}/", handlers.NewUpdateUserHandler(userService))
		r.Delete("/users/{username}/", handlers.NewDeleteUserHandler(userService))

		r.Post("/projects/", handlers.NewCreateProjectHandler(projectService))
		r.Get("/projects/", handlers.NewListProjectsHandler(projectService))
		r.Get("/projects/{project_id}/", handlers.NewGetProjectHandler(projectService))
		r.Delete("/projects/{project_id}/", handlers.NewDeleteProjectHandler(projectService))

		// The batch create runs inside one transaction: either every
		// sentence is created or none are.
		r.With(middlewares.TxMiddleware(sqlxDB)).
			Post("/projects/{project_id}/sentences/", handlers.NewCreateSentencesHandler(sentenceService))
		r.Get("/projects/{project_id}/sentences/", handlers.NewListSentencesHandler(sentenceService))
		r.Get("/projects/{project_id}/sentences/{sentence_id}", handlers.NewGetSentenceHandler(sentenceService))

		r.Post("/projects/{project_id}/sentences/{sentence_id}/translations/", handlers.NewCreateTranslationHandler(translationService))
		r.Get("/projects/{project_id}/sentences/{sentence_id}/translations/{translation_id}", handlers.NewGetTranslationHandler(translationService))

		r.Post("/projects/{project_id}/sentences/{sentence_id}/recordings/", handlers.NewCreateRecordingHandler(recordingService))
		r.Get("/projects/{project_id}/sentences/{sentence_id}/recordings/{recording_id}", handlers.NewGetRecordingHandler(recordingService))

		r.Post("/projects/{project_id}/roles/", handlers.NewCreateRoleHandler(roleService))
		r.Get("/projects/{project_id}/roles/", handlers.NewListRolesHandler(roleService))
		r.Delete("/projects/{project_id}/roles/{role_id}", handlers.NewDeleteRoleHandler(roleService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
