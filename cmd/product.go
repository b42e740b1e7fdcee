package cmd

import (
	"github.com/spf13/cobra"
)

var productCommand = cobra.Command{
	Use:   "product",
	Short: "product commands",
	Long:  `this section harbors the product commands`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
