package cmd

import (
	"github.com/eisenwinter/apicportal/identity"
	"github.com/eisenwinter/apicportal/modules"
	"github.com/spf13/cobra"
)

var modulesCommand = cobra.Command{
	Use:   "modules",
	Short: "custom module commands",
	Long:  `this section harbors the commands to inspect and remove custom modules`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// mustResolveRemover wires a remover, staging entries are kept per user so the
// command line acts as the admin user
func mustResolveRemover(cmd *cobra.Command) (*modules.Remover, int, func()) {
	dataStore := mustResolveUsableDataStore()
	client := mustResolveRedis(cmd.Context())
	factory := mustResolveKeyValueFactory(client)
	dispatcher := bootstrapDispatcher(dataStore.Auditor(), client, resolveModules())
	return resolveRemover(factory, dispatcher), identity.AdminUserID, func() {
		if client != nil {
			_ = client.Close()
		}
		dataStore.Close()
	}
}
