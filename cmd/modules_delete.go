package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var deleteModulesCommand = cobra.Command{
	Use:   "delete",
	Short: "Deletes the staged custom modules",
	Long:  `Deletes all staged custom modules, either all of them are removed or none`,
	Run: func(cmd *cobra.Command, args []string) {
		remover, userID, release := mustResolveRemover(cmd)
		defer release()

		staged, err := remover.Staged(cmd.Context(), userID)
		if err != nil {
			fmt.Printf("Unable to load staged modules: %s \r\n", err)
			os.Exit(1)
			return
		}
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("delete %s? [y/N]\r\n", strings.Join(staged, ", "))
			reader := bufio.NewReader(os.Stdin)
			answer, err := reader.ReadString('\n')
			if err != nil {
				fmt.Printf("Unable to read answer: %s", err)
				os.Exit(1)
				return
			}
			if strings.ToLower(strings.Trim(answer, " \t\r\n")) != "y" {
				fmt.Println("Aborted")
				return
			}
		}
		ok, err := remover.Confirm(cmd.Context(), userID)
		if err != nil {
			fmt.Printf("Unable to delete modules: %s \r\n", err)
			os.Exit(1)
			return
		}
		if !ok {
			fmt.Println("Not all staged modules could be deleted, nothing was removed")
			os.Exit(1)
			return
		}
		fmt.Printf("Deleted %s \r\n", strings.Join(staged, ", "))
	},
}

func init() {
	deleteModulesCommand.Flags().Bool("yes", false, "do not ask for confirmation")
}
