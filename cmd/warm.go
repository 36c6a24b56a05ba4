package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Precompute embeddings for the game catalog",
	Long: `Embeds every catalog entry up front so the first semantic search does
not pay the per-item embedding cost. Requires a configured Azure OpenAI
endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildServices(cmd.Context())
		if err != nil {
			return err
		}
		if !svc.gateway.IsAvailable() {
			return fmt.Errorf("Azure OpenAI is not configured, nothing to warm")
		}

		activities := svc.store.All()
		bar := progressbar.Default(int64(len(activities)), "embedding catalog")

		warmed := 0
		for _, a := range activities {
			if _, ok := svc.store.Embedding(a.ID); !ok {
				vec := svc.gateway.Embed(cmd.Context(), a.EmbeddingText())
				svc.store.SetEmbedding(a.ID, vec)
				warmed++
			}
			bar.Add(1)
		}

		svc.logger.Info().
			Int("total", len(activities)).
			Int("embedded", warmed).
			Msg("catalog warmup complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(warmCmd)
}
