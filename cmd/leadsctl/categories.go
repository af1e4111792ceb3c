package main

import (
	"context"
	"fmt"

	categorystore "github.com/dalemusser/leadsadmin/internal/app/store/categories"
	"github.com/dalemusser/leadsadmin/internal/app/system/indexes"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCategoriesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List or add lead categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print category names in name order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
			defer cancel()

			client, db, err := c.connect(ctx)
			if err != nil {
				return err
			}
			defer disconnect(client, c.logger)

			names, err := categorystore.New(db).Names(ctx)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
			defer cancel()

			client, db, err := c.connect(ctx)
			if err != nil {
				return err
			}
			defer disconnect(client, c.logger)

			// Uniqueness depends on the name index; a fresh database may not have it yet.
			if err := indexes.EnsureAll(ctx, db); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}

			cat, err := categorystore.New(db).Create(ctx, args[0])
			if err != nil {
				return err
			}
			c.logger.Info("category added", zap.String("category", cat.Name))
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", cat.Name)
			return nil
		},
	})

	return cmd
}
