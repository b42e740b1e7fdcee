package cmd

import (
	"fmt"
	"os"

	"github.com/eisenwinter/apicportal/modules"
	"github.com/eisenwinter/apicportal/product"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var importProductCommand = cobra.Command{
	Use:   "import <file>",
	Short: "Imports a product document",
	Long: `Imports a product yaml document as published by the api management backend,
	the product is stored under the relative url given with --url`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url, _ := cmd.Flags().GetString("url")
		if url == "" {
			fmt.Println("--url is required")
			os.Exit(1)
			return
		}
		if !resolveModules().Exists(modules.Product) {
			fmt.Println("Warning: the product module is not enabled, subscriptions will not resolve products")
		}
		document, err := afero.ReadFile(afero.NewOsFs(), args[0])
		if err != nil {
			fmt.Printf("Unable to read product document: %s \r\n", err)
			os.Exit(1)
			return
		}
		dataStore := mustResolveUsableDataStore()
		defer dataStore.Close()
		service := product.NewService(TopLevelLogger.Named("product_service"), dataStore)
		p, created, err := service.Import(cmd.Context(), document, url)
		if err != nil {
			fmt.Printf("Unable to import product: %s \r\n", err)
			os.Exit(1)
			return
		}
		verb := "Updated"
		if created {
			verb = "Created"
		}
		fmt.Printf("%s product %s %s with %d plans \r\n", verb, p.Title, p.Version, len(p.Plans))
	},
}

func init() {
	importProductCommand.Flags().String("url", "", "relative url of the product, e.g. /catalogs/1/products/2")
}
