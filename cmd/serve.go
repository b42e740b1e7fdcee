package cmd

import (
	"github.com/eisenwinter/apicportal/api"
	"github.com/eisenwinter/apicportal/generator"
	"github.com/eisenwinter/apicportal/manage"
	"github.com/eisenwinter/apicportal/tokens"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCommand = cobra.Command{
	Use:   "serve",
	Short: "starts the http server",
	Long:  `Starts a http server and serves the webhook, account and management endpoints`,
	Run: func(cmd *cobra.Command, args []string) {
		//this is our composite root
		dataStore := mustResolveUsableDataStore()
		defer dataStore.Close()

		client := mustResolveRedis(cmd.Context())
		if client != nil {
			defer client.Close()
		}
		factory := mustResolveKeyValueFactory(client)
		handler := resolveModules()

		dispatcher := bootstrapDispatcher(dataStore.Auditor(), client, handler)

		issuer, err := tokens.NewIssuer(TopLevelLogger.Named("token_issuer"), LoadedConfig.JWT)
		if err != nil {
			TopLevelLogger.Fatal("Failed to create token issuer", zap.Error(err))
		}

		appService := resolveApplicationService(dataStore, dispatcher, handler, client)
		accounts := resolveUserService(dataStore, dispatcher, factory)
		passwords := resolvePasswordService(accounts, dispatcher, handler)

		services := &api.Services{
			Issuer:       issuer,
			Applications: appService,
			Passwords:    passwords,
			ResetLinks:   resolveResetLinks(accounts),
			ManageUsers:  manage.NewUserService(dataStore, TopLevelLogger.Named("user_manager")),
			ManageApps:   manage.NewApplicationService(dataStore, TopLevelLogger.Named("application_manager")),
			Remover:      resolveRemover(factory, dispatcher),
			Modules:      handler,
		}

		if LoadedConfig.Server.CSRFToken == "" {
			TopLevelLogger.Warn("No server.csrf-token configured, using a random key, open forms break on restart")
			LoadedConfig.Server.CSRFToken = string(generator.New().CreateKey(32))
		}

		server, err := api.NewServer(LoadedConfig, TopLevelLogger.Named("server"), services, FileSystemsConfig)
		if err != nil {
			TopLevelLogger.Fatal("Failed to create server", zap.Error(err))
		}
		if err := server.Start(); err != nil {
			TopLevelLogger.Error("Server stopped with error", zap.Error(err))
		}
		TopLevelLogger.Info("Shutdown complete")
	},
}
