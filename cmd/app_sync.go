package cmd

import (
	"fmt"
	"os"

	"github.com/eisenwinter/apicportal/application"
	"github.com/spf13/cobra"
)

var syncApplicationCommand = cobra.Command{
	Use:   "sync <app-url>",
	Short: "Fetches an application from the consumer api and stores it",
	Long: `Fetches the current state of the application from the consumer api of the 
	api management backend and creates or updates the local record`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, release := mustResolveApplicationService(cmd)
		defer release()

		payload, err := service.FetchFromAPIC(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Unable to fetch application: %s \r\n", err)
			os.Exit(1)
			return
		}
		if payload == nil {
			fmt.Printf("Application %s was not found on the consumer api \r\n", args[0])
			os.Exit(1)
			return
		}
		id, err := service.CreateOrUpdateReturnID(cmd.Context(), payload, application.EventInternal, nil)
		if err != nil {
			fmt.Printf("Unable to store application: %s \r\n", err)
			os.Exit(1)
			return
		}
		service.InvalidateCaches(cmd.Context())
		fmt.Printf("Stored application %s as %s \r\n", args[0], id)
	},
}
