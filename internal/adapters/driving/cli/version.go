package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("atelier version %s\n", version)
		if commit != "none" {
			cmd.Printf("commit %s\n", commit)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
