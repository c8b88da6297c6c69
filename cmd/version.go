package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of scaffolddemo",
		Long:  `All software has versions. This is scaffolddemo's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scaffolddemo version %s\n", rootCmd.Version)
		},
	}
}
