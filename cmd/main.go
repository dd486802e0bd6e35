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
	"github.com/joho/godotenv"

	"askboard/internal/db"
	"askboard/internal/handlers"
	"askboard/internal/logger"
	"askboard/internal/middlewares"
	"askboard/internal/repositories"
	"askboard/internal/services"
	"askboard/internal/session"
	"askboard/internal/uploads"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel, secretKey, sessionExpSecond,
		uploadDir, templatesDir,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel, secretKey, sessionExpSecond,
		uploadDir, templatesDir,
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
// application, database, session, and asset configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	logLevel, secretKey string, sessionExpSecond int,
	uploadDir, templatesDir string,
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
	pgDB = getEnv("POSTGRES_DB", "askboard")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Session config
	secretKey = getEnv("SECRET_KEY", "my_super_secret_key")
	if sessionExpSecond, err = strconv.Atoi(getEnv("SESSION_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Asset config
	uploadDir = getEnv("UPLOAD_DIR", "images")
	templatesDir = getEnv("TEMPLATES_DIR", "web/templates")

	return
}

// run initializes the logger, database, session manager, upload storage,
// and HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	logLevel, secretKey string, sessionExpSecond int,
	uploadDir, templatesDir string,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	database, err := db.Open(ctx, dsn, pgMaxOpenConns, pgMaxIdleConns)
	if err != nil {
		return err
	}
	defer database.Close()
	if err := db.Migrate(ctx, database); err != nil {
		return err
	}

	// Initialize session manager and upload storage
	sessions := session.NewManager(secretKey, time.Duration(sessionExpSecond)*time.Second)
	storage, err := uploads.NewStorage(uploadDir, log)
	if err != nil {
		return err
	}

	// Parse page templates
	views, err := handlers.NewViews(templatesDir, log)
	if err != nil {
		return err
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(database, log)
	questionRepo := repositories.NewQuestionRepository(database, log)
	answerRepo := repositories.NewAnswerRepository(database, log)
	commentRepo := repositories.NewCommentRepository(database, log)

	// Initialize services
	authService := services.NewAuthService(userRepo, userRepo, log)
	questionService := services.NewQuestionService(questionRepo, answerRepo, commentRepo, userRepo, log)
	answerService := services.NewAnswerService(answerRepo, log)
	commentService := services.NewCommentService(commentRepo, log)
	voteService := services.NewVoteService(questionRepo, answerRepo, log)
	userService := services.NewUserService(userRepo, questionRepo, answerRepo, log)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.IdentityMiddleware(sessions))

	// Public pages
	r.Get("/", handlers.NewHomeHandler(questionService, views))
	r.Get("/search", handlers.NewSearchHandler(questionService, views))
	r.Get("/list", handlers.NewListHandler(questionService, views))
	r.Get("/question/{id}", handlers.NewQuestionPageHandler(questionService, views))
	r.Get("/upload/{filename}", handlers.NewUploadHandler(storage))
	r.Get("/users", handlers.NewUserListHandler(userService, views))
	r.Get("/bonus-questions", handlers.NewBonusQuestionsHandler(views))

	// Account
	loginHandler := handlers.NewLoginHandler(authService, sessions, views)
	r.Get("/login", loginHandler)
	r.Post("/login", loginHandler)
	registerHandler := handlers.NewRegisterHandler(authService, views)
	r.Get("/register", registerHandler)
	r.Post("/register", registerHandler)
	r.Get("/logout", handlers.NewLogoutHandler(sessions))
	r.Get("/user/{id}", handlers.NewUserPageHandler(userService, views))

	// Questions
	addQuestionHandler := handlers.NewAddQuestionHandler(questionService, storage, views)
	r.Get("/add-question", addQuestionHandler)
	r.Post("/add-question", addQuestionHandler)
	editQuestionHandler := handlers.NewEditQuestionHandler(questionService, views)
	r.Get("/question/{id}/edit", editQuestionHandler)
	r.Post("/question/{id}/edit", editQuestionHandler)
	r.Post("/question/{id}/delete", handlers.NewDeleteQuestionHandler(questionService))
	r.Post("/question/{id}/vote-up", handlers.NewQuestionVoteHandler(voteService, services.VoteUp))
	r.Post("/question/{id}/vote-down", handlers.NewQuestionVoteHandler(voteService, services.VoteDown))

	// Answers
	newAnswerHandler := handlers.NewNewAnswerHandler(answerService, storage, views)
	r.Get("/question/{id}/new-answer", newAnswerHandler)
	r.Post("/question/{id}/new-answer", newAnswerHandler)
	editAnswerHandler := handlers.NewEditAnswerHandler(answerService, views)
	r.Get("/answer/{id}/edit", editAnswerHandler)
	r.Post("/answer/{id}/edit", editAnswerHandler)
	r.Post("/answer/{id}/delete", handlers.NewDeleteAnswerHandler(answerService))
	r.Post("/answer/{id}/vote-up", handlers.NewAnswerVoteHandler(voteService, answerService, services.VoteUp))
	r.Post("/answer/{id}/vote-down", handlers.NewAnswerVoteHandler(voteService, answerService, services.VoteDown))

	// Comments
	questionCommentHandler := handlers.NewQuestionCommentHandler(commentService, views)
	r.Get("/question/{id}/new-comment", questionCommentHandler)
	r.Post("/question/{id}/new-comment", questionCommentHandler)
	answerCommentHandler := handlers.NewAnswerCommentHandler(commentService, answerService, views)
	r.Get("/answer/{id}/new-comment", answerCommentHandler)
	r.Post("/answer/{id}/new-comment", answerCommentHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
