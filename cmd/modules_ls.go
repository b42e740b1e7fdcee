package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/eisenwinter/apicportal/modules"
	"github.com/spf13/cobra"
)

var listModulesCommand = cobra.Command{
	Use:   "ls",
	Short: "Lists optional and custom modules",
	Long:  `Lists the optional portal modules with their state and the installed custom modules`,
	Run: func(cmd *cobra.Command, args []string) {
		handler := resolveModules()
		w := tabwriter.NewWriter(os.Stdout, 1, 1, 1, ' ', 0)
		fmt.Fprintf(w, "%s\t%s \r\n", "Module", "Enabled")
		for _, m := range modules.Known {
			fmt.Fprintf(w, "%s\t%v \r\n", m, handler.Exists(m))
		}
		fmt.Fprintf(w, "------------------------------------------------- \r\n")

		remover, _, release := mustResolveRemover(cmd)
		defer release()
		installed, err := remover.Installed()
		if err != nil {
			w.Flush()
			fmt.Printf("Unable to list custom modules: %s \r\n", err)
			os.Exit(1)
			return
		}
		fmt.Fprintf(w, "%s\t \r\n", "Custom module")
		for _, m := range installed {
			fmt.Fprintf(w, "%s\t \r\n", m)
		}
		fmt.Fprintf(w, "------------------------------------------------- \r\n")
		fmt.Fprintf(w, "%d custom modules installed", len(installed))
		w.Flush()
	},
}
