package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var stageModulesCommand = cobra.Command{
	Use:   "stage <module>...",
	Short: "Stages custom modules for deletion",
	Long: `Stages the named custom modules for deletion, 
	nothing is removed until the deletion is confirmed with "modules delete"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		remover, userID, release := mustResolveRemover(cmd)
		defer release()
		if err := remover.Stage(cmd.Context(), userID, args); err != nil {
			fmt.Printf("Unable to stage modules: %s \r\n", err)
			os.Exit(1)
			return
		}
		fmt.Printf("Staged %s for deletion \r\n", strings.Join(args, ", "))
	},
}
