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
	"github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/admin"
	adminPostgres "github.com/santhosh9133/sterline-hr/internal/admin/postgres"
	"github.com/santhosh9133/sterline-hr/internal/auth"
	authPostgres "github.com/santhosh9133/sterline-hr/internal/auth/postgres"
	"github.com/santhosh9133/sterline-hr/internal/city"
	cityPostgres "github.com/santhosh9133/sterline-hr/internal/city/postgres"
	"github.com/santhosh9133/sterline-hr/internal/country"
	countryPostgres "github.com/santhosh9133/sterline-hr/internal/country/postgres"
	"github.com/santhosh9133/sterline-hr/internal/department"
	departmentPostgres "github.com/santhosh9133/sterline-hr/internal/department/postgres"
	"github.com/santhosh9133/sterline-hr/internal/designation"
	designationPostgres "github.com/santhosh9133/sterline-hr/internal/designation/postgres"
	"github.com/santhosh9133/sterline-hr/internal/employee"
	employeePostgres "github.com/santhosh9133/sterline-hr/internal/employee/postgres"
	"github.com/santhosh9133/sterline-hr/internal/order"
	orderPostgres "github.com/santhosh9133/sterline-hr/internal/order/postgres"
	"github.com/santhosh9133/sterline-hr/internal/sequence"
	"github.com/santhosh9133/sterline-hr/internal/state"
	statePostgres "github.com/santhosh9133/sterline-hr/internal/state/postgres"
	"github.com/santhosh9133/sterline-hr/internal/transport"
	"github.com/santhosh9133/sterline-hr/internal/transport/rest"
	"github.com/santhosh9133/sterline-hr/pkg/logger"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
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
	GormDB   *gorm.DB
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

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

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

	gormDB, db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	lg := logger.LoggerWrapper()
	base := transport.NewBaseHandler(lg)
	issuer := auth.NewJWTIssuer(config.Security.JWTSecret, config.Security.TokenTTL)
	seq := sequence.New(gormDB)

	authService := auth.NewService(authPostgres.NewUserRepository(gormDB), issuer, config.Security.BcryptCost, lg)
	employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(gormDB), issuer, config.Security.BcryptCost, lg)
	adminService := admin.NewService(adminPostgres.NewAdminRepository(gormDB), issuer, config.Security.BcryptCost, lg)
	countryService := country.NewService(countryPostgres.NewCountryRepository(gormDB), seq, lg)
	stateService := state.NewService(statePostgres.NewStateRepository(gormDB), seq, lg)
	cityService := city.NewService(cityPostgres.NewCityRepository(gormDB), seq, lg)
	departmentService := department.NewService(departmentPostgres.NewDepartmentRepository(gormDB), seq, lg)
	designationService := designation.NewService(designationPostgres.NewDesignationRepository(gormDB), seq, lg)
	orderService := order.NewService(orderPostgres.NewOrderRepository(gormDB), lg)

	handlers := rest.Handlers{
		Auth:        auth.NewHandler(base, authService),
		Employee:    employee.NewHandler(base, employeeService),
		Admin:       admin.NewHandler(base, adminService),
		Country:     country.NewHandler(base, countryService),
		State:       state.NewHandler(base, stateService),
		City:        city.NewHandler(base, cityService),
		Department:  department.NewHandler(base, departmentService),
		Designation: designation.NewHandler(base, designationService),
		Order:       order.NewHandler(base, orderService),
	}

	return &Dependencies{
		Config:   config,
		Logger:   lg,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
	}, nil
}

// initDB opens one pgx connection pool and wraps it for both gorm and the
// health checker.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, *sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: dbConn.DB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return gormDB, dbConn, nil
}
