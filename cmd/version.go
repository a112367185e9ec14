package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"paacman_go/config"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.out, "Paacman - Version Information Menu")
			fmt.Fprintln(a.out, "Central Executable:")
			fmt.Fprintf(a.out, "\tPaacman:\t\t%s\n", config.MainVersion)
			fmt.Fprintln(a.out, "\nModules:")
			for _, c := range config.Components() {
				fmt.Fprintf(a.out, "\t%-22s%s\n", c.Name+":", c.Version)
			}
		},
	}
}
