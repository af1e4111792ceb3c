package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// cli carries flags and per-invocation state shared by every subcommand.
type cli struct {
	envFile  string
	mongoURI string
	database string
	logFile  string
	verbose  bool
	timeout  time.Duration

	cfg    Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "leadsctl",
		Short: "Operator tools for the leads admin database",
		Long: `leadsctl works directly against the leads admin MongoDB database.

Connection settings come from LEADSADMIN_MONGO_URI and LEADSADMIN_MONGO_DATABASE,
optionally loaded from a .env file, and can be overridden with flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.envFile)
			if err != nil {
				return err
			}
			if c.mongoURI != "" {
				cfg.MongoURI = c.mongoURI
			}
			if c.database != "" {
				cfg.MongoDatabase = c.database
			}
			if c.logFile != "" {
				cfg.LogFile = c.logFile
			}
			c.cfg = cfg

			c.logger, err = newLogger(c.verbose, cfg.LogFile)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.envFile, "env-file", "", "load environment from this file (default: ./.env when present)")
	pf.StringVar(&c.mongoURI, "mongo-uri", "", "MongoDB URI (overrides LEADSADMIN_MONGO_URI)")
	pf.StringVar(&c.database, "database", "", "database name (overrides LEADSADMIN_MONGO_DATABASE)")
	pf.StringVar(&c.logFile, "log-file", "", "also write logs to this file, rotated")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")
	pf.DurationVar(&c.timeout, "timeout", 30*time.Second, "deadline for database work")

	root.AddCommand(
		newExportCmd(c),
		newCategoriesCmd(c),
		newHashPinCmd(),
	)
	return root
}

// connect opens the configured database. The caller disconnects the client.
func (c *cli) connect(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	if err := c.cfg.validate(); err != nil {
		return nil, nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(c.cfg.MongoURI).
		SetAppName("leadsctl").
		SetServerSelectionTimeout(10*time.Second))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	c.logger.Debug("connected", zap.String("database", c.cfg.MongoDatabase))
	return client, client.Database(c.cfg.MongoDatabase), nil
}

func disconnect(client *mongo.Client, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Warn("mongo disconnect failed", zap.Error(err))
	}
}
