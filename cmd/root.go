package cmd

import (
	"fmt"
	"os"

	"github.com/eisenwinter/apicportal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ConfigFileLocation is of the config to load
var ConfigFileLocation string

// TopLevelLogger is the logger all loggers come from
var TopLevelLogger *zap.Logger

// LoadedConfig is the currently loaded configuration after initial bootstrapping
var LoadedConfig *config.Configuration

// FileSystemsConfig consists of the filesystems to use (either local or embed)
var FileSystemsConfig *config.FileSystems

var rootCommand = cobra.Command{
	Use:   "apicportal",
	Short: "apicportal synchronizes an api management backend with a developer portal",
	Long: `apicportal keeps the developer portal in sync with the api management backend,
	it stores applications, credentials and subscriptions and serves the portal forms`,
	Run: func(cmd *cobra.Command, args []string) {
		serveCommand.Run(cmd, args)
	},
}

func Execute() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {

	rootCommand.PersistentFlags().
		StringVar(&ConfigFileLocation, "config", "", "config file to be used")

	applicationCommand.AddCommand(&listApplicationsCommand)
	applicationCommand.AddCommand(&syncApplicationCommand)
	applicationCommand.AddCommand(&removeApplicationCommand)
	applicationCommand.AddCommand(&applicationImageCommand)

	productCommand.AddCommand(&importProductCommand)

	modulesCommand.AddCommand(&listModulesCommand)
	modulesCommand.AddCommand(&stageModulesCommand)
	modulesCommand.AddCommand(&deleteModulesCommand)

	userCommand.AddCommand(&listUsersCommand)
	userCommand.AddCommand(&userCreateCommand)
	userCommand.AddCommand(&userPasswordCommand)
	userCommand.AddCommand(&userResetLinkCommand)

	tokenCommand.AddCommand(&tokenIssueCommand)
	tokenCommand.AddCommand(&tokenVerifyCommand)

	rootCommand.AddCommand(&applicationCommand)
	rootCommand.AddCommand(&productCommand)
	rootCommand.AddCommand(&modulesCommand)
	rootCommand.AddCommand(&userCommand)
	rootCommand.AddCommand(&serveCommand)
	rootCommand.AddCommand(&tokenCommand)
}
