package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/eisenwinter/apicportal/identity"
	"github.com/eisenwinter/apicportal/tokens"
	"github.com/spf13/cobra"
)

var tokenIssueCommand = cobra.Command{
	Use:   "issue <user-id>",
	Short: "issues a token to the command line, mainly used for testing",
	Long: `issues a signed token for the local user to the command line, 
	the token carries the consumer organization of the user and the given permissions`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("Invalid user id %s \r\n", args[0])
			os.Exit(1)
			return
		}
		accounts, release := mustResolveAccounts(cmd)
		defer release()
		u, err := accounts.ByID(cmd.Context(), id)
		if err != nil {
			fmt.Printf("Unable to load user: %s \r\n", err)
			os.Exit(1)
			return
		}
		permissions, _ := cmd.Flags().GetStringSlice("permission")
		p := &identity.Principal{
			UserID:      u.ID,
			Username:    u.Username,
			Permissions: permissions,
		}
		if u.ConsumerOrgURL != nil {
			p.ConsumerOrgURL = *u.ConsumerOrgURL
		}

		issuer, err := tokens.NewIssuer(TopLevelLogger.Named("token_issuer"), LoadedConfig.JWT)
		if err != nil {
			fmt.Printf("Unable to create token issuer: %s \r\n", err)
			os.Exit(1)
			return
		}
		token, err := issuer.IssuePrincipalToken(p)
		if err != nil {
			fmt.Printf("Unable to issue token: %s \r\n", err)
			os.Exit(1)
			return
		}
		signed, err := issuer.Sign(token)
		if err != nil {
			fmt.Printf("Unable to sign token: %s \r\n", err)
			os.Exit(1)
			return
		}
		fmt.Println(string(signed))
	},
}

func init() {
	tokenIssueCommand.Flags().StringSlice("permission", nil, "permissions to grant, e.g. \"edit any application content\"")
}
