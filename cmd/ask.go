package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	askCmd = &cobra.Command{
		Use:          "ask <question>",
		Short:        "Answer a question from the stored records",
		Long:         `Builds a context string from the first few stored entities and asks the completion endpoint to answer using only that context.`,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := newService()

			if err != nil {
				return err
			}

			defer cleanup()

			printResult(service.QueryByText(cmd.Context(), strings.Join(args, " ")))
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(askCmd)
}
