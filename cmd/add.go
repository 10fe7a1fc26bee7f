package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	addCmd = &cobra.Command{
		Use:          "add [text]",
		Short:        "Convert free text into a structured record and store it",
		Long:         `Sends the text to the completion endpoint for extraction and ingests the resulting record into the entity store. Reads from stdin when no argument is given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			if text == "" {
				data, err := io.ReadAll(os.Stdin)

				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}

				text = string(data)
			}

			service, cleanup, err := newService()

			if err != nil {
				return err
			}

			defer cleanup()

			printResult(service.AddToDB(cmd.Context(), text))
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(addCmd)
}
