package cmd

import (
	"github.com/spf13/cobra"
)

var (
	getCmd = &cobra.Command{
		Use:          "get <entity>",
		Short:        "Show the stored frames for one entity",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := newService()

			if err != nil {
				return err
			}

			defer cleanup()

			printResult(service.QueryEntity(cmd.Context(), args[0]))
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(getCmd)
}
