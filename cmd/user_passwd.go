package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var userPasswordCommand = cobra.Command{
	Use:   "passwd <user-id>",
	Short: "Sets the password of a local user",
	Long:  `Sets a new password for the local user, the password is read from the terminal`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Invalid user id %s \r\n", args[0])
			os.Exit(1)
			return
		}
		accounts, release := mustResolveAccounts(cmd)
		defer release()
		if _, err := accounts.ByID(cmd.Context(), id); err != nil {
			fmt.Printf("Unable to load user: %s \r\n", err)
			os.Exit(1)
			return
		}
		if err := accounts.SetPassword(cmd.Context(), id, readPassword()); err != nil {
			fmt.Printf("Unable to set password: %s \r\n", err)
			os.Exit(1)
			return
		}
		fmt.Printf("Password changed for user %d \r\n", id)
	},
}
