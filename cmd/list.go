package cmd

import (
	"github.com/spf13/cobra"
)

var (
	listCmd = &cobra.Command{
		Use:          "list",
		Short:        "List all stored entities",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := newService()

			if err != nil {
				return err
			}

			defer cleanup()

			printResult(service.ListAllEntities(cmd.Context()))
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(listCmd)
}
