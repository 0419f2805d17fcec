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

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/veiligwerk/toolbox-tracker/internal"
	"github.com/veiligwerk/toolbox-tracker/internal/auth"
	authpg "github.com/veiligwerk/toolbox-tracker/internal/auth/postgres"
	"github.com/veiligwerk/toolbox-tracker/internal/completion"
	completionpg "github.com/veiligwerk/toolbox-tracker/internal/completion/postgres"
	"github.com/veiligwerk/toolbox-tracker/internal/core/events"
	"github.com/veiligwerk/toolbox-tracker/internal/employee"
	employeepg "github.com/veiligwerk/toolbox-tracker/internal/employee/postgres"
	"github.com/veiligwerk/toolbox-tracker/internal/invitation"
	invitationpg "github.com/veiligwerk/toolbox-tracker/internal/invitation/postgres"
	"github.com/veiligwerk/toolbox-tracker/internal/toolbox"
	toolboxpg "github.com/veiligwerk/toolbox-tracker/internal/toolbox/postgres"
	"github.com/veiligwerk/toolbox-tracker/internal/transport/rest"
	"github.com/veiligwerk/toolbox-tracker/internal/user"
	userpg "github.com/veiligwerk/toolbox-tracker/internal/user/postgres"
	"github.com/veiligwerk/toolbox-tracker/pkg/logger"
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
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	EventBus *events.EventBus
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Config.Server.AllowedOrigins, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	eventBus := events.NewEventBus(lg)
	registerEventSubscribers(eventBus, lg)

	// Repositories
	userAuthRepo := authpg.NewRepository(gormDB)
	userRepo := userpg.NewUserRepository(gormDB)
	employeeRepo := employeepg.NewEmployeeRepository(gormDB)
	toolboxRepo := toolboxpg.NewToolboxRepository(gormDB)
	completionRepo := completionpg.NewCompletionRepository(gormDB)
	invitationRepo := invitationpg.NewInvitationRepository(gormDB)

	// Services
	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.TokenTTL)
	invitationService := invitation.NewService(invitationRepo, lg)
	authService := auth.NewService(userAuthRepo, tokenGen, invitationService, eventBus, config.Security.BCryptCost)
	userService := user.NewService(userRepo, authService, lg)
	employeeService := employee.NewService(employeeRepo, lg)
	toolboxService := toolbox.NewService(toolboxRepo, lg)
	completionService := completion.NewService(completionRepo, eventBus, lg)

	handlers := rest.Handlers{
		Auth:       auth.NewHandler(authService),
		User:       user.NewHandler(userService),
		Employee:   employee.NewHandler(employeeService),
		Toolbox:    toolbox.NewHandler(toolboxService),
		Completion: completion.NewHandler(completionService),
		Invitation: invitation.NewHandler(invitationService),
	}

	return &Dependencies{
		Config:   config,
		Logger:   lg,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
		EventBus: eventBus,
	}, nil
}

// registerEventSubscribers attaches the audit log subscribers for domain
// events. Delivery is in-process and best effort.
func registerEventSubscribers(bus *events.EventBus, lg *slog.Logger) {
	bus.Subscribe(events.EventTypeUserRegistered, func(ctx context.Context, e events.Event) error {
		if ev, ok := e.(*events.UserRegisteredEvent); ok {
			lg.Info("user registered",
				"user_id", ev.UserID,
				"username", ev.Username,
				"role", ev.Role)
		}
		return nil
	})
	bus.Subscribe(events.EventTypeCompletionRecorded, func(ctx context.Context, e events.Event) error {
		if ev, ok := e.(*events.CompletionRecordedEvent); ok {
			lg.Info("completion recorded",
				"completion_id", ev.CompletionID,
				"employee_id", ev.EmployeeID,
				"toolbox_id", ev.ToolboxID,
				"recorded_by", ev.RecordedBy)
		}
		return nil
	})
}

// initDB opens the pgx-backed connection pool shared by the ORM and the
// health checks.
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
