package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/viper"
	"github.com/theapemachine/recall-go/pkg/provider"
	"github.com/theapemachine/recall-go/pkg/recall"
	"github.com/theapemachine/recall-go/pkg/record"
	"github.com/theapemachine/recall-go/pkg/stores"
	"github.com/theapemachine/recall-go/pkg/stores/memstore"
	"github.com/theapemachine/recall-go/pkg/stores/sqlite"
	"github.com/theapemachine/recall-go/pkg/stores/vector"
)

/*
newService assembles the pipeline from configuration: completion provider,
entity store, and the optional semantic index.  A missing credential aborts
here, before any operation runs.
*/
func newService() (*recall.Service, func(), error) {
	completion, err := newCompletion()

	if err != nil {
		return nil, nil, err
	}

	store, cleanup, err := newStore()

	if err != nil {
		return nil, nil, err
	}

	options := []recall.ServiceOption{
		recall.WithModels(
			viper.GetString("llm.extract_model"),
			viper.GetString("llm.answer_model"),
		),
		recall.WithTemperature(viper.GetFloat64("llm.temperature")),
		recall.WithMaxTokens(viper.GetInt64("llm.max_tokens")),
		recall.WithContextLimit(viper.GetInt("context.limit")),
		recall.WithSeparator(viper.GetString("context.separator")),
	}

	if viper.GetBool("search.enabled") {
		embedder, err := provider.NewOpenAIEmbedder()

		if err != nil {
			cleanup()
			return nil, nil, err
		}

		index, err := vector.New(embedder)

		if err != nil {
			cleanup()
			return nil, nil, err
		}

		options = append(options, recall.WithIndex(index))
	}

	return recall.NewService(completion, store, options...), cleanup, nil
}

func newCompletion() (provider.Interface, error) {
	switch viper.GetString("llm.provider") {
	case "anthropic":
		return provider.NewAnthropicProvider()
	default:
		return provider.NewOpenAIProvider()
	}
}

func newStore() (stores.EntityStore, func(), error) {
	switch viper.GetString("store.backend") {
	case "memory":
		return memstore.New(), func() {}, nil
	default:
		store, err := sqlite.Open(viper.GetString("store.path"))

		if err != nil {
			return nil, nil, err
		}

		return store, func() { store.Close() }, nil
	}
}

// printResult renders a result envelope as indented JSON on stdout.
func printResult(result record.QueryResult) {
	out, err := json.MarshalIndent(result, "", "  ")

	if err != nil {
		fmt.Println(result.Message)
		return
	}

	fmt.Println(string(out))
}
