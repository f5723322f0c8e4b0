package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danisworo/workdesk/internal"
	"github.com/danisworo/workdesk/internal/assistant"
	"github.com/danisworo/workdesk/internal/attendance"
	attendancepg "github.com/danisworo/workdesk/internal/attendance/postgres"
	"github.com/danisworo/workdesk/internal/auth"
	authpg "github.com/danisworo/workdesk/internal/auth/postgres"
	"github.com/danisworo/workdesk/internal/chat"
	chatpg "github.com/danisworo/workdesk/internal/chat/postgres"
	"github.com/danisworo/workdesk/internal/employee"
	employeepg "github.com/danisworo/workdesk/internal/employee/postgres"
	"github.com/danisworo/workdesk/internal/project"
	projectpg "github.com/danisworo/workdesk/internal/project/postgres"
	"github.com/danisworo/workdesk/internal/task"
	taskpg "github.com/danisworo/workdesk/internal/task/postgres"
	"github.com/danisworo/workdesk/internal/transport/rest"
	"github.com/danisworo/workdesk/internal/user"
	userpg "github.com/danisworo/workdesk/internal/user/postgres"
	"github.com/danisworo/workdesk/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	log := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	router := chi.NewRouter()
	handlers := buildHandlers(config, gormDB, log)
	rest.RegisterAllRoutes(router, db.DB, handlers, config.Server.AllowedOrigins, log)

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		Router: router,
	}, nil
}

func buildHandlers(config *internal.Config, gormDB *gorm.DB, log *slog.Logger) rest.Handlers {
	tokens := auth.NewJWTTokenGenerator(config.Security.SessionSecret, config.Security.SessionTTL)

	authRepo := authpg.NewRepository(gormDB)
	authService := auth.NewService(authRepo, tokens, config.Security.BCryptCost, log)

	userRepo := userpg.NewUserRepository(gormDB)
	userService := user.NewService(userRepo)

	employeeRepo := employeepg.NewEmployeeRepository(gormDB)
	employeeService := employee.NewService(employeeRepo, authService, log)

	taskRepo := taskpg.NewTaskRepository(gormDB)
	taskService := task.NewService(taskRepo, log)

	projectRepo := projectpg.NewProjectRepository(gormDB)
	projectService := project.NewService(projectRepo, log)

	attendanceRepo := attendancepg.NewAttendanceRepository(gormDB)
	attendanceService := attendance.NewService(attendanceRepo, log)

	assistantClient := assistant.NewClient(assistant.Config{
		BaseURL: config.Assistant.BaseURL,
		Timeout: config.Assistant.Timeout,
	}, log)
	chatRepo := chatpg.NewChatRepository(gormDB)
	chatService := chat.NewService(chatRepo, assistantClient, log)

	return rest.Handlers{
		Auth:       auth.NewHandler(authService),
		User:       user.NewHandler(userService),
		Employee:   employee.NewHandler(employeeService),
		Task:       task.NewHandler(taskService),
		Project:    project.NewHandler(projectService),
		Attendance: attendance.NewHandler(attendanceService),
		Chat:       chat.NewHandler(chatService),
	}
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the shared connection pool so gorm and raw
// sqlx queries draw from the same pool limits.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
}
