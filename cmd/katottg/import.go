package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/toponyms/internal/store"
)

var errNoDatabase = errors.New("DATABASE_URL is not set")

func newImportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import [input]",
		Short: "Romanize register records and replace the database contents with them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Database.Enabled() {
				return errNoDatabase
			}
			input := a.cfg.Convert.Input
			if len(args) == 1 {
				input = args[0]
			}
			if cmd.Flags().Changed("format") {
				a.cfg.Convert.Format = format
			}
			if err := a.revalidate(); err != nil {
				return err
			}

			recs, err := a.loadRecords(cmd, input)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			st, pool, err := store.Open(ctx, a.cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := st.Migrate(ctx); err != nil {
				return err
			}
			id, err := st.Import(ctx, displayName(input), recs)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "input format: auto, text, rows, csv (env KATOTTG_FORMAT)")
	return cmd
}
