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

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/auth"
	authpg "github.com/Acon1tum/hris-test-sub000/internal/auth/postgres"
	"github.com/Acon1tum/hris-test-sub000/internal/department"
	departmentpg "github.com/Acon1tum/hris-test-sub000/internal/department/postgres"
	"github.com/Acon1tum/hris-test-sub000/internal/designation"
	designationpg "github.com/Acon1tum/hris-test-sub000/internal/designation/postgres"
	"github.com/Acon1tum/hris-test-sub000/internal/employment"
	employmentpg "github.com/Acon1tum/hris-test-sub000/internal/employment/postgres"
	"github.com/Acon1tum/hris-test-sub000/internal/leave"
	leavepg "github.com/Acon1tum/hris-test-sub000/internal/leave/postgres"
	"github.com/Acon1tum/hris-test-sub000/internal/office"
	officepg "github.com/Acon1tum/hris-test-sub000/internal/office/postgres"
	"github.com/Acon1tum/hris-test-sub000/internal/organization"
	organizationpg "github.com/Acon1tum/hris-test-sub000/internal/organization/postgres"
	"github.com/Acon1tum/hris-test-sub000/internal/payroll"
	payrollpg "github.com/Acon1tum/hris-test-sub000/internal/payroll/postgres"
	"github.com/Acon1tum/hris-test-sub000/internal/rbac"
	rbacpg "github.com/Acon1tum/hris-test-sub000/internal/rbac/postgres"
	"github.com/Acon1tum/hris-test-sub000/internal/schedule"
	schedulepg "github.com/Acon1tum/hris-test-sub000/internal/schedule/postgres"
	"github.com/Acon1tum/hris-test-sub000/internal/transport/rest"
	"github.com/Acon1tum/hris-test-sub000/internal/transport/swagger"
	"github.com/Acon1tum/hris-test-sub000/pkg/logger"

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
	Config   *internal.Config
	DB       *sqlx.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := swagger.ValidateSpec(context.Background(), "./api/openapi.yml"); err != nil {
		deps.Logger.Warn("openapi spec validation failed, swagger UI may be broken", "error", err)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Config.Server.AllowedOrigins, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
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

	logger.Init(os.Getenv("APP_ENV"), config.Observability.Logging.Level)
	log := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	handlers := buildHandlers(config, gormDB, log)

	return &Dependencies{
		Config:   config,
		Logger:   log,
		DB:       db,
		Router:   chi.NewRouter(),
		Handlers: handlers,
	}, nil
}

func buildHandlers(config *internal.Config, gormDB *gorm.DB, log *slog.Logger) rest.Handlers {
	rbacService := rbac.NewService(rbacpg.NewRepository(gormDB), log)

	tokens := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authpg.NewRepository(gormDB), rbacService, tokens, config.Security.BCryptCost, log)

	return rest.Handlers{
		Auth:        auth.NewHandler(authService),
		RBAC:        rbac.NewHandler(rbacService),
		Guard:       rbac.NewGuard(rbacService, log),
		Org:         organization.NewHandler(organization.NewService(organizationpg.NewRepository(gormDB), log)),
		Office:      office.NewHandler(office.NewService(officepg.NewRepository(gormDB), log)),
		Department:  department.NewHandler(department.NewService(departmentpg.NewRepository(gormDB), log)),
		Designation: designation.NewHandler(designation.NewService(designationpg.NewRepository(gormDB), log)),
		Employment:  employment.NewHandler(employment.NewService(employmentpg.NewRepository(gormDB), log)),
		Leave:       leave.NewHandler(leave.NewService(leavepg.NewRepository(gormDB), log)),
		Schedule:    schedule.NewHandler(schedule.NewService(schedulepg.NewRepository(gormDB), log)),
		Payroll:     payroll.NewHandler(payroll.NewService(payrollpg.NewRepository(gormDB), log)),
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

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
