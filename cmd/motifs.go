package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"paacman_go/motif_catalog"
)

func (a *app) motifsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "motifs [set]",
		Short: "List the motif sets, or the motifs of one set",
		Long: `List the motif sets, or the motifs of one set

Sets: Composition, CysLigation, AlaLigation, Aspartimide, Pseudoproline, AllDipeptides.
Motifs are listed in report column order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, set := range motif_catalog.Sets() {
					fmt.Fprintf(a.out, "%-15s %4d  %s\n", set.Name, set.Size(), set.Title)
				}
				return nil
			}

			set, err := motif_catalog.Set(motif_catalog.SetName(args[0]))
			if err != nil {
				return err
			}
			motifs := make([]string, set.Size())
			for i, m := range set.Motifs {
				motifs[i] = string(m)
			}
			fmt.Fprintf(a.out, "%s (%d)\n%s\n", set.Title, set.Size(), strings.Join(motifs, " "))
			return nil
		},
	}
}
