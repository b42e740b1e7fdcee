package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var userResetLinkCommand = cobra.Command{
	Use:   "reset-link <username>",
	Short: "Prints a one time password reset link",
	Long: `Issues a one time password reset token for the user and prints the link 
	to the change password form, the token expires after kv.reset-token-expiry.
	With --mail the link is also sent to the email address of the user`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		accounts, release := mustResolveAccounts(cmd)
		defer release()
		notify, _ := cmd.Flags().GetBool("mail")
		link, err := resolveResetLinks(accounts).Issue(cmd.Context(), args[0], notify)
		if err != nil && link == nil {
			fmt.Printf("Unable to issue reset link: %s \r\n", err)
			os.Exit(1)
			return
		}
		if err != nil {
			fmt.Printf("Unable to mail reset link: %s \r\n", err)
		}
		fmt.Printf("%s \r\n", link.Link)
		fmt.Printf("expires at %s, mailed: %v \r\n", link.Expiry.Format("2006-01-02 15:04"), link.Mailed)
	},
}

func init() {
	userResetLinkCommand.Flags().Bool("mail", false, "mail the link to the user")
}
