package cmd

import (
	"fmt"
	"os"
	"syscall"

	"github.com/eisenwinter/apicportal/modules"
	"github.com/eisenwinter/apicportal/user"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var userCommand = cobra.Command{
	Use:   "user",
	Short: "user commands",
	Long:  `this section harbors the user commands`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// mustResolveAccounts wires the local account service, the returned func releases connections
func mustResolveAccounts(cmd *cobra.Command) (*user.Service, func()) {
	dataStore := mustResolveUsableDataStore()
	client := mustResolveRedis(cmd.Context())
	factory := mustResolveKeyValueFactory(client)
	dispatcher := bootstrapDispatcher(dataStore.Auditor(), client, resolveModules())
	return resolveUserService(dataStore, dispatcher, factory), func() {
		if client != nil {
			_ = client.Close()
		}
		dataStore.Close()
	}
}

// readPassword asks until both inputs match and the password policy is met
func readPassword() string {
	for {
		fmt.Println("password?")
		pwd, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			fmt.Printf("Unable to read password: %s", err)
			os.Exit(1)
		}
		if len(pwd) == 0 {
			fmt.Println("password must not be empty.")
			continue
		}
		if resolveModules().Exists(modules.PasswordPolicy) && LoadedConfig.PasswordPolicy.ShowPolicyStatus {
			failed := user.Failed(user.PolicyStatus(LoadedConfig.PasswordPolicy, string(pwd)))
			if len(failed) > 0 {
				for _, v := range failed {
					fmt.Printf("- %s\r\n", v)
				}
				continue
			}
		}
		fmt.Println("repeat password?")
		again, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			fmt.Printf("Unable to read password: %s", err)
			os.Exit(1)
		}
		if string(again) != string(pwd) {
			fmt.Println("passwords do not match.")
			continue
		}
		return string(pwd)
	}
}
