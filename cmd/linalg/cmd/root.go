// Package cmd implements the linalg demonstration CLI.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/linalg/internal/config"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// app is the per-invocation state shared by subcommands.
type app struct {
	cfgFile string
	verbose bool
	boxed   bool
	noColor bool

	cfg    *config.Config
	logger *slog.Logger
}

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "linalg",
		Short: "Dense matrix demo",
		Long: `linalg builds small dense matrices and prints their aligned rendering.

Commands:
  demo     - the built-in sample session
  list     - names of the configured samples
  render   - print one sample
  pow      - raise a square sample to a non-negative power`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file, .toml or .yaml (default: built-in samples)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&a.boxed, "boxed", false, "draw a border around each matrix")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored log output")

	root.AddCommand(
		newDemoCmd(a),
		newListCmd(a),
		newRenderCmd(a),
		newPowCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// init loads configuration and wires the logger.
func (a *app) init(logOut io.Writer) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.boxed {
		cfg.Boxed = true
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		lvl = slog.LevelDebug
	}

	a.cfg = cfg
	a.logger = slog.New(tint.NewHandler(logOut, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		NoColor:    a.noColor,
	}))
	a.logger.Debug("configuration loaded", "file", a.cfgFile, "samples", len(cfg.Samples), "boxed", cfg.Boxed)

	return nil
}

// sample resolves a configured sample by name.
func (a *app) sample(name string) (*matrix.Dense, error) {
	s, err := a.cfg.Sample(name)
	if err != nil {
		return nil, err
	}

	return s.Matrix()
}

// print writes a titled rendering of m.
func (a *app) print(w io.Writer, title string, m matrix.Matrix) {
	body := matrix.Render(m)
	if a.cfg.Boxed {
		body = boxStyle.Render(body)
	}
	fmt.Fprintf(w, "%s:\n%s\n\n", title, body)
}
