package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"activation-engine/internal/api"
	"activation-engine/internal/engine"
)

// The eval commands run one engine operation on a JSON request read from
// --input (or stdin) and print the same JSON the HTTP API would return.

func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Derive tags from a user state",
		Long: `Read a user state ({"energy", "mood", "context"}) and print {"tags": [...]}.

Examples:
  echo '{"energy": 1, "mood": "Tired"}' | activation tags`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var us engine.UserState
			return evaluate(cmd, &us, func(rt *app) any {
				return api.RunTags(rt.engine, us)
			})
		},
	}
	addInputFlag(cmd)
	return cmd
}

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank tasks by fit with a user state",
		Long: `Read {"user_state": {...}, "tasks": [...]} and print {"candidates": [...]}.

Examples:
  activation rank --input request.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req api.RankTasksRequest
			return evaluate(cmd, &req, func(rt *app) any {
				return api.RunRankTasks(rt.engine, req)
			})
		},
	}
	addInputFlag(cmd)
	return cmd
}

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Pick a prompt category for a mood and energy",
		Long: `Read {"mood", "energy", "categories"} and print {"category": ...}.

Examples:
  echo '{"energy": 5, "categories": ["Relax", "Workout"]}' | activation category`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req api.PromptCategoryRequest
			return evaluate(cmd, &req, func(rt *app) any {
				return api.RunPromptCategory(rt.engine, req)
			})
		},
	}
	addInputFlag(cmd)
	return cmd
}

func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "-", "request JSON file, - for stdin")
}

func evaluate(cmd *cobra.Command, dst any, run func(*app) any) error {
	in, closeFn, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := api.Decode(in, dst); err != nil {
		return err
	}

	rt := loadApp(cmd)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(run(rt))
}

func openInput(cmd *cobra.Command) (io.Reader, func(), error) {
	path, _ := cmd.Flags().GetString("input")
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
