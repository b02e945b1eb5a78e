package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/posedex/internal/domain/search/filter"
	"github.com/kailas-cloud/posedex/internal/domain/search/request"
	"github.com/kailas-cloud/posedex/internal/domain/search/result"
	searchrepo "github.com/kailas-cloud/posedex/internal/repository/search"
	searchuc "github.com/kailas-cloud/posedex/internal/usecase/search"
)

var (
	searchPrompt   string
	searchLevel    string
	searchPoseType string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one search and print the matching poses as JSON",
	Example: `  posedex search --prompt "poses that stretch the hamstrings"
  posedex search --prompt "balance" --expertise-level Beginner
  posedex search --prompt "open the hips" --pose-type Seated`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSearch(cmd.Context(), &current, os.Stdout, searchPrompt, searchLevel, searchPoseType)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchPrompt, "prompt", "", "natural-language query")
	searchCmd.Flags().StringVar(&searchLevel, "expertise-level", "", "only return poses of this expertise level")
	searchCmd.Flags().StringVar(&searchPoseType, "pose-type", "", "only return poses tagged with this pose type")
	_ = searchCmd.MarkFlagRequired("prompt")
}

type searchOutput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	ExpertiseLevel string   `json:"expertise_level"`
	PhotoURL       string   `json:"photo_url"`
	PoseType       []string `json:"pose_type"`
	Distance       float64  `json:"distance"`
}

func runSearch(ctx context.Context, a *app, out io.Writer, prompt, level, poseType string) error {
	cfg, logger := &a.cfg, a.logger

	filters, err := filter.ForPose(level, poseType)
	if err != nil {
		return fmt.Errorf("filters: %w", err)
	}

	req, err := request.New(prompt, filters, cfg.Search.TopK)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	_, queryEmbedder := buildEmbedder(cfg, store, logger)
	svc := searchuc.New(
		searchrepo.New(store, cfg.Storage.Namespace),
		queryEmbedder,
		cfg.Storage.Collection,
		cfg.Embedding.Dimensions,
	)

	results, err := svc.Search(ctx, &req)
	if err != nil {
		return err
	}

	return printResults(out, results)
}

func printResults(out io.Writer, results []result.Result) error {
	items := make([]searchOutput, len(results))
	for i := range results {
		r := &results[i]
		items[i] = searchOutput{
			Name:           r.Name(),
			Description:    r.Description(),
			ExpertiseLevel: r.ExpertiseLevel(),
			PhotoURL:       r.PhotoURL(),
			PoseType:       r.PoseType(),
			Distance:       r.Distance(),
		}
	}

	return printJSON(out, items)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
