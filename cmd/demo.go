package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var demoExamples = []string{
	`Python is a programming language created by Guido van Rossum in 1991.
It supports object-oriented, imperative, and functional programming.
It's commonly used for web development, data science, and automation.`,
	`Today I completed my first Python project in my home office.
It took 2 hours and was successful. I did a code review afterwards.`,
	`The Tesla Model 3 is red, made in 2023, and parked in the garage.
It has a range of 358 miles and goes 0-60 mph in 3.1 seconds.`,
}

var demoQuestions = []string{
	"What programming language was created by Guido van Rossum?",
	"Tell me about the Tesla Model 3's specifications.",
	"What happened during the first Python project?",
}

var (
	demoCmd = &cobra.Command{
		Use:          "demo",
		Short:        "Run a demonstration of the memory pipeline",
		Long:         `Ingests a few example passages, lists the resulting entities, and answers natural-language questions grounded in the stored records.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetLevel(log.DebugLevel)

			service, cleanup, err := newService()

			if err != nil {
				return err
			}

			defer cleanup()

			ctx := cmd.Context()

			log.Info("adding examples to database")

			for i, example := range demoExamples {
				log.Info("adding example", "number", i+1)
				printResult(service.AddToDB(ctx, example))
			}

			log.Info("listing all entities")
			printResult(service.ListAllEntities(ctx))

			log.Info("querying specific entity", "entity", "Python_Language")
			printResult(service.QueryEntity(ctx, "Python_Language"))

			log.Info("testing natural language queries")

			for _, question := range demoQuestions {
				log.Info("query", "question", question)
				printResult(service.QueryByText(ctx, question))
			}

			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(demoCmd)
}
