package cmd

import (
	"github.com/eisenwinter/apicportal/application"
	"github.com/spf13/cobra"
)

var applicationCommand = cobra.Command{
	Use:   "app",
	Short: "application commands",
	Long:  `this section harbors the application commands`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// mustResolveApplicationService wires the application service the same way serve does,
// the returned func releases the datastore and redis connections
func mustResolveApplicationService(cmd *cobra.Command) (*application.Service, func()) {
	dataStore := mustResolveUsableDataStore()
	client := mustResolveRedis(cmd.Context())
	handler := resolveModules()
	dispatcher := bootstrapDispatcher(dataStore.Auditor(), client, handler)
	service := resolveApplicationService(dataStore, dispatcher, handler, client)
	return service, func() {
		if client != nil {
			_ = client.Close()
		}
		dataStore.Close()
	}
}
