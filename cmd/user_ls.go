package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/eisenwinter/apicportal/manage"
	"github.com/spf13/cobra"
)

var listUsersCommand = cobra.Command{
	Use:   "ls",
	Short: "Lists all local users",
	Long:  `This will list all local users`,
	Run: func(cmd *cobra.Command, args []string) {
		dataStore := mustResolveUsableDataStore()
		defer dataStore.Close()
		service := manage.NewUserService(dataStore, TopLevelLogger.Named("manage_user_service"))
		query, _ := cmd.Flags().GetString("query")
		lst, err := service.List(context.Background(), 1, math.MaxInt, query, "")
		if err != nil {
			fmt.Printf("Unable to load users: %s", err)
			os.Exit(1)
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 1, 1, 1, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s \r\n", "ID", "Username", "Email", "ConsumerOrg", "CreatedAt")
		for _, v := range lst.Entries.([]*manage.UserDTO) {
			org := ""
			if v.ConsumerOrgURL != nil {
				org = *v.ConsumerOrgURL
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s \r\n", v.ID, v.Username, v.Email, org, v.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(w, "------------------------------------------------- \r\n")
		fmt.Fprintf(w, "%d entries loaded", lst.Total)
		w.Flush()
	},
}

func init() {
	listUsersCommand.Flags().String("query", "", "FIQL filter, e.g. username==admin")
}
