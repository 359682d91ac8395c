package cmd

import (
	"github.com/katalvlaran/linalg/matrix"
	"github.com/spf13/cobra"
)

// demoScalar and demoExp are the constants of the sample session.
const (
	demoScalar = 15.0
	demoExp    = 5
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample session on matrices A (2x3) and B (2x2)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDemo(cmd)
		},
	}
}

// runDemo prints A, B, B+B, 15·A, (B·A)ᵀ, Aᵀ·Bᵀ and B⁵.
func (a *app) runDemo(cmd *cobra.Command) error {
	A, err := a.sample("A")
	if err != nil {
		return err
	}
	B, err := a.sample("B")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	a.print(out, "A", A)
	a.print(out, "B", B)

	sum, err := matrix.Add(B, B)
	if err != nil {
		return err
	}
	a.print(out, "B + B", sum)

	scaled, err := matrix.ScaleLeft(demoScalar, A)
	if err != nil {
		return err
	}
	a.print(out, "15 * A", scaled)

	ba, err := matrix.Mul(B, A)
	if err != nil {
		return err
	}
	baT, err := matrix.Transpose(ba)
	if err != nil {
		return err
	}
	a.print(out, "(B * A)^T", baT)

	aT, err := matrix.Transpose(A)
	if err != nil {
		return err
	}
	bT, err := matrix.Transpose(B)
	if err != nil {
		return err
	}
	// Aᵀ·Bᵀ via compound multiplication; equals (B·A)ᵀ.
	if err = aT.MulInPlace(bT); err != nil {
		return err
	}
	a.print(out, "A^T * B^T", aT)
	a.logger.Debug("transpose identity", "holds", matrix.Equal(aT, baT))

	if err = matrix.ValidateSquareNonNil(B); err != nil {
		return err
	}
	p, err := matrix.Pow(B, demoExp, matrix.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.print(out, "B^5", p)

	return nil
}
