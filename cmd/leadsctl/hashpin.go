package main

import (
	"fmt"

	"github.com/dalemusser/leadsadmin/internal/app/system/pinauth"
	"github.com/spf13/cobra"
)

func newHashPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-pin PIN",
		Short: "Print a bcrypt hash suitable for LEADSADMIN_AUTH_PIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pinauth.Validate(args[0]); err != nil {
				return err
			}
			hash, err := pinauth.Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
