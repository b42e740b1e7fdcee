package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var userCreateCommand = cobra.Command{
	Use:   "create",
	Short: "launches a on terminal user creation dialog",
	Long:  `this command may be used to create a local user account from command line`,
	Run: func(cmd *cobra.Command, args []string) {
		accounts, release := mustResolveAccounts(cmd)
		defer release()
		reader := bufio.NewReader(os.Stdin)

		ask := func(question string) string {
			fmt.Println(question)
			answer, err := reader.ReadString('\n')
			if err != nil {
				fmt.Printf("Unable to read input: %s", err)
				os.Exit(1)
			}
			return strings.Trim(answer, " \t\r\n")
		}

		username := ask("username?")
		email := ask("email?")
		var consumerOrg *string
		if org, _ := cmd.Flags().GetString("consumer-org"); org != "" {
			consumerOrg = &org
		}
		pwd := readPassword()

		id, err := accounts.CreateUser(cmd.Context(), username, email, pwd, consumerOrg)
		if err != nil {
			fmt.Printf("Unable to create user: %s \r\n", err)
			os.Exit(1)
			return
		}
		fmt.Printf("Created user %s with id: %v", username, id)
	},
}

func init() {
	userCreateCommand.Flags().String("consumer-org", "", "consumer organization url the user belongs to")
}
