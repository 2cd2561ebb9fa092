package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/card"
	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/clockoffset"
	"github.com/heartmarshall/srs-review-backend/internal/app"
	"github.com/heartmarshall/srs-review-backend/internal/clock"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Mark overdue cards and release expired freezes once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		offset, err := clockoffset.New(e.pool).Get(ctx)
		if err != nil {
			return fmt.Errorf("load clock offset: %w", err)
		}
		clk := clock.New(nil)
		clk.SetOffset(offset)

		res, err := app.NewSweeper(e.log, card.New(e.pool), clk).Run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "overdue: %d, released: %d (now %s)\n",
			res.MarkedOverdue, res.Released, clk.Now().Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
