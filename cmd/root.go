// Package cmd is the paacman command line
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"paacman_go/config"
)

// app carries the state shared by every command of one invocation
type app struct {
	v      *viper.Viper
	logger *log.Logger
	out    io.Writer
}

func newApp(out, errOut io.Writer) *app {
	logger := log.New(errOut)
	logger.SetReportTimestamp(true)
	return &app{v: config.New(), logger: logger, out: out}
}

// rootCmd builds the paacman command tree
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "paacman",
		Short: "Amino acid and dipeptide composition of protein FASTA corpora",
		Long: `Amino acid and dipeptide composition of protein FASTA corpora

"paacman analyze" reads every .txt FASTA file of a folder (one protein per file),
counts residues, ligation junctions, aspartimide and pseudoproline motifs and the
full 20x20 dipeptide matrix, and writes a three sheet report.`,
		Version:       config.MainVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setLevel(a.v.GetString("log-level"), a.v.GetBool("verbose"))
		},
	}
	root.SetOut(a.out)

	flags := root.PersistentFlags()
	flags.String("config", "", "settings file (default paacman.yaml in the corpus folder)")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.Bool("verbose", false, "debug logging, overrides --log-level")
	flags.Bool("benchmark", false, "report time and memory used by the run")
	for _, name := range []string{"config", "log-level", "verbose", "benchmark"} {
		a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(a.analyzeCmd(), a.motifsCmd(), a.versionCmd())
	return root
}

// setLevel applies the configured log level; verbose forces debug
func (a *app) setLevel(level string, verbose bool) {
	if verbose {
		a.logger.SetLevel(log.DebugLevel)
		return
	}
	switch strings.ToLower(level) {
	case "debug":
		a.logger.SetLevel(log.DebugLevel)
	case "info", "":
		a.logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		a.logger.SetLevel(log.WarnLevel)
	case "error":
		a.logger.SetLevel(log.ErrorLevel)
	default:
		a.logger.SetLevel(log.InfoLevel)
		a.logger.Warn("unknown log level, defaulting to info", "provided", level)
	}
}

// Execute runs the command line. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		a.logger.Error("paacman failed", "err", err)
		stop()
		os.Exit(1)
	}
}
