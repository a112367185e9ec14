package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"paacman_go/motif_catalog"
	"paacman_go/report_model"
)

var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	accentColor  = lipgloss.Color("#F59E0B") // Amber
	mutedColor   = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor  = lipgloss.Color("#374151") // Border gray

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	labelStyle   = lipgloss.NewStyle().Foreground(mutedColor).Width(26)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).MarginTop(1)
)

func field(label string, value any) string {
	return labelStyle.Render(label) + fmt.Sprint(value)
}

// renderSummary draws the console overview printed after a run
func renderSummary(folder string, s report_model.Summary) string {
	lines := []string{
		titleStyle.Render("AA Analysis for " + folder),
		field("Proteins", s.Proteins),
		field("Residues", s.Residues),
		field("Length (mean ± sd)", fmt.Sprintf("%.1f ± %.1f", s.MeanLength, s.StdDevLength)),
		field("Length (range)", fmt.Sprintf("%d - %d", s.MinLength, s.MaxLength)),
		field("Most / least common", s.MostCommon+" / "+s.LeastCommon),
	}

	lines = append(lines, sectionStyle.Render("Residue shares"))
	for _, r := range s.PerResidue {
		lines = append(lines, field(r.Residue, fmt.Sprintf("%5.2f%%  per protein %5.2f%% ± %.2f  [%.2f%% - %.2f%%]",
			100*r.Corpus, 100*r.Mean, 100*r.StdDev, 100*r.Min, 100*r.Max)))
	}

	lines = append(lines, sectionStyle.Render("Dipeptide sites"))
	for _, name := range motif_catalog.NamedDipeptideSets() {
		lines = append(lines, field(motif_catalog.MustSet(name).Title, s.SiteTotals[name]))
	}

	if len(s.NonCanonical) > 0 {
		residues := make([]string, 0, len(s.NonCanonical))
		for r, n := range s.NonCanonical {
			residues = append(residues, fmt.Sprintf("%c:%d", r, n))
		}
		sort.Strings(residues)
		lines = append(lines, sectionStyle.Render("Ignored residues"), strings.Join(residues, " "))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
