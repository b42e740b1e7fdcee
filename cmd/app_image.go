package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var applicationImageCommand = cobra.Command{
	Use:   "image <app-url> [image-path]",
	Short: "Sets or clears the image of an application",
	Long: `Sets the image path of the application, 
	omitting the image path clears it so the placeholder is shown again`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		service, release := mustResolveApplicationService(cmd)
		defer release()

		var image *string
		if len(args) == 2 && args[1] != "" {
			image = &args[1]
		}
		ok, err := service.SetImage(cmd.Context(), args[0], image)
		if err != nil {
			fmt.Printf("Unable to set image: %s \r\n", err)
			os.Exit(1)
			return
		}
		if !ok {
			fmt.Printf("No application found for %s \r\n", args[0])
			os.Exit(1)
			return
		}
		record, err := service.ByURL(cmd.Context(), args[0])
		if err != nil || record == nil {
			fmt.Println("Image updated")
			return
		}
		fmt.Printf("Image updated, now serving %s \r\n", service.ImageForApp(record, ""))
	},
}
