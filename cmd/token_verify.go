package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/eisenwinter/apicportal/tokens"
	"github.com/spf13/cobra"
)

var tokenVerifyCommand = cobra.Command{
	Use:   "verify <token>",
	Short: "verifies a token and prints the principal it carries",
	Long:  `verifies the signature and expiry of a token with the configured key and prints the principal`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		issuer, err := tokens.NewIssuer(TopLevelLogger.Named("token_issuer"), LoadedConfig.JWT)
		if err != nil {
			fmt.Printf("Unable to create token issuer: %s \r\n", err)
			os.Exit(1)
			return
		}
		verifier := tokens.NewTokenVerifier(TopLevelLogger.Named("token_verifier"), issuer)
		token, err := verifier.ParseAndValidate(args[0])
		if err != nil {
			fmt.Printf("Invalid token: %s \r\n", err)
			os.Exit(1)
			return
		}
		p, err := tokens.PrincipalFromToken(token)
		if err != nil {
			fmt.Printf("Invalid token: %s \r\n", err)
			os.Exit(1)
			return
		}
		fmt.Printf("user id:      %d \r\n", p.UserID)
		fmt.Printf("username:     %s \r\n", p.Username)
		fmt.Printf("consumer org: %s \r\n", p.ConsumerOrgURL)
		fmt.Printf("permissions:  %s \r\n", strings.Join(p.Permissions, ", "))
		fmt.Printf("expires at:   %s \r\n", token.Expiration().Format("2006-01-02 15:04:05"))
	},
}
