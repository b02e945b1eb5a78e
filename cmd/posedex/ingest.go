package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	ingestuc "github.com/kailas-cloud/posedex/internal/usecase/ingest"
)

var ingestFile string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Embed the pose dataset and store it in the vector index",
	Long: `Reads a JSON array of poses, embeds each pose and stores it with its metadata.
Records that fail are logged and skipped. There is no deduplication: running ingest
twice on the same file stores every pose twice.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runIngest(cmd.Context(), &current, ingestFile)
	},
}

func init() {
	ingestCmd.Flags().StringVar(&ingestFile, "file", "data/yoga_poses_with_descriptions.json", "pose dataset to ingest")
}

func runIngest(ctx context.Context, a *app, path string) error {
	cfg, logger := &a.cfg, a.logger

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	// Document embeddings go straight to the provider; the cache only serves queries.
	providerEmbedder, _ := buildEmbedder(cfg, nil, logger)

	svc := ingestuc.New(
		buildDocumentRepo(cfg, store),
		providerEmbedder,
		cfg.Storage.Collection,
		cfg.Embedding.Dimensions,
		logger,
	)

	rep, err := svc.IngestFile(ctx, path)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, rep)
}
