package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schoolconnect/internal/adapters/http/middleware"
	"schoolconnect/internal/adapters/http/routes"
	"schoolconnect/internal/adapters/persistence/models"
	"schoolconnect/internal/config"
	"schoolconnect/internal/pkg/logger"
	"schoolconnect/internal/pkg/password"

	"github.com/go-extras/cobraflags"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Seed flags
const (
	adminEmailFlag    = "admin-email"
	adminPasswordFlag = "admin-password"
	adminNameFlag     = "admin-name"
)

var seedFlags = map[string]cobraflags.Flag{
	adminEmailFlag: &cobraflags.StringFlag{
		Name:  adminEmailFlag,
		Value: "",
		Usage: "Email of an approved admin account to create (skipped when empty)",
	},
	adminPasswordFlag: &cobraflags.StringFlag{
		Name:  adminPasswordFlag,
		Value: "",
		Usage: "Password for the admin account",
	},
	adminNameFlag: &cobraflags.StringFlag{
		Name:  adminNameFlag,
		Value: "Administrator",
		Usage: "Display name for the admin account",
	},
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "schoolconnect",
		Short:         "School Connect API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCommand, // serve is the default
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and start the HTTP server",
		RunE:  serveCommand,
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE:  migrateCommand,
	})

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample mandals, schools and an optional admin account",
		RunE:  seedCommand,
	}
	cobraflags.RegisterMap(seedCmd, seedFlags)
	root.AddCommand(seedCmd)

	return root
}

// deps bundles what every subcommand needs
type deps struct {
	cfg *config.Config
	log *zap.Logger
	db  *config.Database
}

func bootstrap() (*deps, error) {
	cfg, envFileLoaded, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.New(cfg.AppMode)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	if !envFileLoaded {
		log.Debug("no .env file found, using environment variables")
	}

	db, err := config.ConnectDatabase(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	return &deps{cfg: cfg, log: log, db: db}, nil
}

func (rt *deps) close() {
	if err := rt.db.Close(); err != nil {
		rt.log.Warn("close database", zap.Error(err))
	}
	_ = rt.log.Sync()
}

func (rt *deps) migrate() error {
	if err := models.AutoMigrate(rt.db.DB); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	rt.log.Info("database migration completed")
	return nil
}

func migrateCommand(_ *cobra.Command, _ []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()

	return rt.migrate()
}

func seedCommand(cmd *cobra.Command, _ []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()

	if err := rt.migrate(); err != nil {
		return err
	}

	opts := config.SeedOptions{
		AdminEmail:    seedFlags[adminEmailFlag].GetString(),
		AdminPassword: seedFlags[adminPasswordFlag].GetString(),
		AdminName:     seedFlags[adminNameFlag].GetString(),
	}
	if opts.AdminEmail != "" && opts.AdminPassword == "" {
		return fmt.Errorf("--%s is required with --%s", adminPasswordFlag, adminEmailFlag)
	}

	seeder := config.NewSeeder(rt.db.DB, password.NewHasher(rt.cfg.BcryptCost), rt.log)
	return seeder.Run(cmd.Context(), opts)
}

func serveCommand(_ *cobra.Command, _ []string) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()

	// Auto migrate (creates tables if not exist)
	if err := rt.migrate(); err != nil {
		return err
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "School Connect API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	// Setup middlewares
	middleware.Setup(app, rt.cfg, rt.log)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, rt.db, rt.cfg, rt.log)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		rt.log.Info("server starting", zap.String("port", rt.cfg.Port), zap.String("mode", rt.cfg.AppMode))
		errCh <- app.Listen(":" + rt.cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("start server: %w", err)
	case <-ctx.Done():
	}

	rt.log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	rt.log.Info("server stopped gracefully")
	return nil
}
