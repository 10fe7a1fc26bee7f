package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchLimit int

	searchCmd = &cobra.Command{
		Use:          "search <query>",
		Short:        "Search stored frames by semantic similarity",
		Long:         `Runs a semantic similarity query over the frame index. Requires search.enabled in the config.`,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, cleanup, err := newService()

			if err != nil {
				return err
			}

			defer cleanup()

			printResult(service.Search(cmd.Context(), strings.Join(args, " "), searchLimit))
			return nil
		},
	}
)

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 5, "maximum number of frames to return")
	rootCmd.AddCommand(searchCmd)
}
