package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/pawfect-catalog/internal/config"
	"github.com/light-bringer/pawfect-catalog/internal/logging"
	"github.com/light-bringer/pawfect-catalog/internal/services"
	"github.com/light-bringer/pawfect-catalog/migrations"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configFile string
	cfg        config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the pawfect catalog database",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.LoadFile(opts.configFile)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			opts.cfg, opts.logger = cfg, logger
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a YAML config file")

	cmd.AddCommand(newUpCmd(opts), newSeedCmd(opts))
	return cmd
}

func newUpCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create the instance and database if missing and apply the embedded DDL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.cfg.Store.Backend != config.BackendSpanner {
				return fmt.Errorf("migrate up needs the spanner backend, got %q", opts.cfg.Store.Backend)
			}
			db, err := parseDatabase(opts.cfg.Store.SpannerDatabase)
			if err != nil {
				return err
			}
			m := &migrator{db: db, logger: opts.logger}
			return m.run(cmd.Context())
		},
	}
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load YAML fixtures through the admin use cases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg
			// Seeding happens below, not at service startup.
			cfg.Store.SeedFile = ""
			svc, err := services.NewServiceOptions(cmd.Context(), cfg, opts.logger)
			if err != nil {
				return err
			}
			defer svc.Close()
			return svc.SeedFromFile(cmd.Context(), file)
		},
	}
	cmd.Flags().StringVar(&file, "file", "fixtures.yaml", "fixtures file to load")
	return cmd
}

// databasePath is a parsed projects/P/instances/I/databases/D name.
type databasePath struct {
	project, instance, database string
}

func parseDatabase(name string) (databasePath, error) {
	parts := strings.Split(name, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return databasePath{}, fmt.Errorf("invalid spanner database name %q", name)
	}
	return databasePath{project: parts[1], instance: parts[3], database: parts[5]}, nil
}

func (d databasePath) instanceName() string {
	return fmt.Sprintf("projects/%s/instances/%s", d.project, d.instance)
}

func (d databasePath) String() string {
	return d.instanceName() + "/databases/" + d.database
}

type migrator struct {
	db     databasePath
	logger *zap.Logger
}

func (m *migrator) run(ctx context.Context) error {
	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		m.logger.Info("using spanner emulator", zap.String("host", host))
		// Only the emulator lets us create instances on demand.
		if err := m.ensureInstance(ctx); err != nil {
			return fmt.Errorf("failed to ensure instance: %w", err)
		}
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	if err := m.ensureDatabase(ctx, adminClient); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	if err := m.applyMigrations(ctx, adminClient); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	m.logger.Info("migrations completed")
	return nil
}

func (m *migrator) ensureInstance(ctx context.Context) error {
	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: m.db.instanceName()})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return err
	}

	m.logger.Info("creating instance", zap.String("instance", m.db.instance))
	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     "projects/" + m.db.project,
		InstanceId: m.db.instance,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", m.db.project),
			DisplayName: "Development Instance",
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to wait for instance creation: %w", err)
	}
	return nil
}

func (m *migrator) ensureDatabase(ctx context.Context, adminClient *database.DatabaseAdminClient) error {
	_, err := adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: m.db.String()})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to check database: %w", err)
	}

	m.logger.Info("creating database", zap.String("database", m.db.database))
	op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          m.db.instanceName(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", m.db.database),
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

// applyMigrations skips statements whose table or index already exists, so
// running up twice is a no-op.
func (m *migrator) applyMigrations(ctx context.Context, adminClient *database.DatabaseAdminClient) error {
	all, err := migrations.All()
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	ddl, err := adminClient.GetDatabaseDdl(ctx, &databasepb.GetDatabaseDdlRequest{Database: m.db.String()})
	if err != nil {
		return fmt.Errorf("failed to read current schema: %w", err)
	}
	existing := make(map[string]bool, len(ddl.GetStatements()))
	for _, stmt := range ddl.GetStatements() {
		existing[ddlObject(stmt)] = true
	}

	for _, mig := range all {
		pending := make([]string, 0, len(mig.Statements))
		for _, stmt := range mig.Statements {
			if name := ddlObject(stmt); name == "" || !existing[name] {
				pending = append(pending, stmt)
			}
		}
		if len(pending) == 0 {
			m.logger.Info("migration already applied", zap.String("migration", mig.Name))
			continue
		}

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   m.db.String(),
			Statements: pending,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", mig.Name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", mig.Name, err)
		}
		m.logger.Info("applied migration", zap.String("migration", mig.Name), zap.Int("statements", len(pending)))
	}
	return nil
}

// ddlObject returns "TABLE name" or "INDEX name" for CREATE statements and
// "" for anything else.
func ddlObject(stmt string) string {
	fields := strings.Fields(strings.ToUpper(stmt))
	if len(fields) < 3 || fields[0] != "CREATE" {
		return ""
	}
	fields = fields[1:]
	for len(fields) > 0 && (fields[0] == "UNIQUE" || fields[0] == "NULL_FILTERED") {
		fields = fields[1:]
	}
	if len(fields) < 2 || (fields[0] != "TABLE" && fields[0] != "INDEX") {
		return ""
	}
	name := strings.Trim(strings.SplitN(fields[1], "(", 2)[0], "`")
	return fields[0] + " " + name
}
