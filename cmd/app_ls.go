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

var listApplicationsCommand = cobra.Command{
	Use:   "ls",
	Short: "Lists all applications",
	Long: `This will list all stored applications, 
	the result may be narrowed with a FIQL query like --query "consumer_org_url==/orgs/1"`,
	Run: func(cmd *cobra.Command, args []string) {
		dataStore := mustResolveUsableDataStore()
		defer dataStore.Close()
		service := manage.NewApplicationService(
			dataStore,
			TopLevelLogger.Named("manage_application_service"))
		query, _ := cmd.Flags().GetString("query")
		sort, _ := cmd.Flags().GetString("sort")
		lst, err := service.List(context.Background(), 1, math.MaxInt, query, sort)
		if err != nil {
			fmt.Printf("Unable to load applications: %s", err)
			os.Exit(1)
			return
		}
		w := tabwriter.NewWriter(os.Stdout, 1, 1, 1, ' ', 0)
		fmt.Fprintf(
			w,
			"%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s \r\n",
			"ID",
			"ApplicationID",
			"Title",
			"URL",
			"ConsumerOrg",
			"State",
			"Enabled",
			"Credentials",
			"Subscriptions",
		)
		for _, v := range lst.Entries.([]*manage.ApplicationDTO) {
			fmt.Fprintf(
				w,
				"%s\t%s\t%s\t%s\t%s\t%s\t%v\t%d\t%d \r\n",
				v.ID,
				v.ApplicationID,
				v.Title,
				v.URL,
				v.ConsumerOrgURL,
				v.State,
				v.Enabled,
				v.Credentials,
				v.Subscriptions,
			)
		}

		fmt.Fprintf(w, "------------------------------------------------- \r\n")
		fmt.Fprintf(w, "%d entries loaded", lst.Total)
		w.Flush()
	},
}

func init() {
	listApplicationsCommand.Flags().String("query", "", "FIQL filter, e.g. title==Weather*")
	listApplicationsCommand.Flags().String("sort", "", "sort column, prefix with - for descending")
}
