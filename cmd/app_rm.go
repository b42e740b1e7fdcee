package cmd

import (
	"fmt"
	"os"

	"github.com/eisenwinter/apicportal/application"
	"github.com/spf13/cobra"
)

var removeApplicationCommand = cobra.Command{
	Use:   "rm <app-url>",
	Short: "Removes a stored application",
	Long: `Removes the stored application identified by its url,
	use --id to remove by the backend application id instead`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, release := mustResolveApplicationService(cmd)
		defer release()

		byID, _ := cmd.Flags().GetBool("id")
		var ok bool
		var err error
		if byID {
			ok, err = service.DeleteByID(cmd.Context(), args[0], application.EventInternal)
		} else {
			ok, err = service.DeleteByURL(cmd.Context(), args[0], application.EventInternal)
		}
		if err != nil {
			fmt.Printf("Unable to remove application: %s \r\n", err)
			os.Exit(1)
			return
		}
		if !ok {
			fmt.Printf("No application found for %s \r\n", args[0])
			os.Exit(1)
			return
		}
		service.InvalidateCaches(cmd.Context())
		fmt.Printf("Removed application %s \r\n", args[0])
	},
}

func init() {
	removeApplicationCommand.Flags().Bool("id", false, "treat the argument as application id")
}
