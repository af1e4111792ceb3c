package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	leadstore "github.com/dalemusser/leadsadmin/internal/app/store/leads"
	"github.com/dalemusser/leadsadmin/internal/app/system/leadcsv"
	"github.com/dalemusser/leadsadmin/internal/domain/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newExportCmd(c *cli) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all leads as CSV, newest first",
		Long: `Writes every lead in the same CSV format as the dashboard export.

With --out a directory, the file is named leads_<YYYY-MM-DD>.csv inside it.
Without --out the CSV goes to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), c.timeout)
			defer cancel()

			client, db, err := c.connect(ctx)
			if err != nil {
				return err
			}
			defer disconnect(client, c.logger)

			leads, err := leadstore.New(db).List(ctx)
			if err != nil {
				return err
			}

			if out == "" {
				w := cmd.OutOrStdout()
				if err := leadcsv.Write(w, leads); err != nil {
					return fmt.Errorf("write csv: %w", err)
				}
				fmt.Fprintln(w)
				return nil
			}

			path := out
			if fi, err := os.Stat(out); err == nil && fi.IsDir() {
				path = filepath.Join(out, leadcsv.Filename(time.Now()))
			}
			if err := writeCSVFile(path, leads); err != nil {
				return err
			}
			c.logger.Info("exported leads", zap.Int("count", len(leads)), zap.String("file", path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file or directory (default: stdout)")
	return cmd
}

// writeCSVFile creates path and writes leads to it, including the close error.
func writeCSVFile(path string, leads []models.Lead) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := leadcsv.Write(f, leads); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
