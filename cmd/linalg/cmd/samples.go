package cmd

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured sample names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(a.cfg.Names(), "\n"))
			return err
		},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <sample>",
		Short: "Print a configured sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.sample(args[0])
			if err != nil {
				return err
			}
			a.print(cmd.OutOrStdout(), args[0], m)

			return nil
		},
	}
}

func newPowCmd(a *app) *cobra.Command {
	var exp int

	c := &cobra.Command{
		Use:   "pow <sample>",
		Short: "Raise a square sample to a non-negative integer power",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.sample(args[0])
			if err != nil {
				return err
			}
			// Pow panics on these; report them as usage errors instead.
			id, err := matrix.IdentityLike(m)
			if err != nil {
				return fmt.Errorf("pow %s: %w", args[0], err)
			}
			if exp < 0 {
				return fmt.Errorf("pow %s: exponent %d: %w", args[0], exp, matrix.ErrNegativeExponent)
			}

			p := id
			if exp > 0 {
				if p, err = matrix.Pow(m, exp, matrix.WithLogger(a.logger)); err != nil {
					return err
				}
			}
			a.logger.Info("power computed", "sample", args[0], "exp", exp)
			a.print(cmd.OutOrStdout(), fmt.Sprintf("%s^%d", args[0], exp), p)

			return nil
		},
	}
	c.Flags().IntVarP(&exp, "exp", "e", 2, "exponent (>= 0)")

	return c
}
