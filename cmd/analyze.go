package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"paacman_go/benchmark"
	"paacman_go/composition"
	"paacman_go/composition_plot"
	"paacman_go/config"
	"paacman_go/csv_writer"
	"paacman_go/fasta_loader"
	"paacman_go/report_model"
	"paacman_go/xlsx_writer"
)

func (a *app) analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [dir]",
		Short: "Analyze a folder of protein FASTA files",
		Long: `Analyze a folder of protein FASTA files

Every .txt file of the folder must hold exactly one FASTA record. Files are
read in natural order (protein2 before protein10), which is the row order of
every report table. The report is written as "AA Analysis for <folder>.xlsx"
or, with --format csv, as one CSV file per report section.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.v.Set("dir", args[0])
			}
			s, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.setLevel(s.LogLevel, s.Verbose)
			a.logger.Debug("loaded settings", "dir", s.Dir, "out", s.Out, "format", s.Format, "threads", s.Threads, "plot", s.Plot)

			run := func() error { return a.analyze(cmd.Context(), s) }
			if s.Benchmark {
				return benchmark.Run(a.logger, "analyze "+s.Dir, run)
			}
			return run()
		},
	}

	flags := cmd.Flags()
	flags.StringP("dir", "d", "", "folder of .txt FASTA files")
	flags.StringP("out", "o", "", "output folder (default the corpus folder)")
	flags.StringP("format", "f", config.FormatXLSX, "report format: xlsx or csv")
	flags.IntP("threads", "t", 0, "analysis workers (default one per CPU)")
	flags.Bool("plot", false, "also write SVG composition figures")
	for _, name := range []string{"dir", "out", "format", "threads", "plot"} {
		a.v.BindPFlag(name, flags.Lookup(name))
	}
	return cmd
}

// analyze runs the whole pipeline: load, count, aggregate, assemble, write
func (a *app) analyze(ctx context.Context, s config.Settings) error {
	folder, err := folderName(s.Dir)
	if err != nil {
		return err
	}

	records, err := fasta_loader.Load(s.Dir)
	if err != nil {
		return err
	}
	for _, r := range records {
		a.logger.Debug("loaded protein", "protein", r.Name, "residues", len(r.Sequence))
	}
	a.logger.Info("loaded corpus", "dir", s.Dir, "proteins", len(records))

	analyses, err := composition.AnalyzeCorpus(ctx, records, s.Workers())
	if err != nil {
		return err
	}
	for _, an := range analyses {
		if len(an.NonCanonical) > 0 {
			a.logger.Warn("non-canonical residues left out of totals", "protein", an.Record.Name, "residues", residueCounts(an.NonCanonical))
		}
	}

	agg, err := composition.Aggregate(analyses)
	if err != nil {
		return err
	}
	report, err := report_model.Assemble(analyses, agg)
	if err != nil {
		return err
	}

	paths, err := writeReport(s, folder, report)
	if err != nil {
		return err
	}
	for _, p := range paths {
		a.logger.Info("wrote report", "output", p)
	}

	fmt.Fprintln(a.out, renderSummary(folder, report.Summary))
	return nil
}

// writeReport renders report in the configured format, plus figures on request
func writeReport(s config.Settings, folder string, report report_model.Report) ([]string, error) {
	if err := os.MkdirAll(s.Out, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.Out, err)
	}

	var paths []string
	switch s.Format {
	case config.FormatCSV:
		written, err := csv_writer.Write(s.Out, folder, report)
		if err != nil {
			return nil, err
		}
		paths = written
	default:
		path := filepath.Join(s.Out, xlsx_writer.FileName(folder))
		if err := xlsx_writer.Write(path, report); err != nil {
			return nil, err
		}
		paths = []string{path}
	}

	if s.Plot {
		figures, err := composition_plot.Write(s.Out, folder, report)
		if err != nil {
			return nil, err
		}
		paths = append(paths, figures...)
	}
	return paths, nil
}

// folderName is the base name of dir, resolved so "." names the real folder
func folderName(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	return filepath.Base(abs), nil
}

// residueCounts formats a residue tally as "B:2 X:1", sorted by residue
func residueCounts(counts map[rune]int) string {
	residues := make([]rune, 0, len(counts))
	for r := range counts {
		residues = append(residues, r)
	}
	sort.Slice(residues, func(i, j int) bool { return residues[i] < residues[j] })

	parts := make([]string, len(residues))
	for i, r := range residues {
		parts[i] = fmt.Sprintf("%c:%d", r, counts[r])
	}
	return strings.Join(parts, " ")
}
