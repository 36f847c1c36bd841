package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/logger"
)

var ingestSourceType string

var ingestCmd = &cobra.Command{
	Use:   "ingest [file...]",
	Short: "Add documents to the corpus",
	Long: `Add text files to the course corpus. Each file becomes one document,
chunked for retrieval. Re-ingesting a file with the same name replaces
its chunks. Restart the server afterwards so it picks up the new chunks.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestSourceType, "source-type", "notes", "source type label for the ingested documents")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	b, err := newBackend()
	if err != nil {
		return err
	}
	defer b.close()

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		name := filepath.Base(path)
		title := strings.TrimSuffix(name, filepath.Ext(name))

		doc, err := b.ingest.IngestText(cmd.Context(), name, title, ingestSourceType, string(data))
		if err != nil {
			return fmt.Errorf("ingesting %s: %w", path, err)
		}

		logger.Info("ingested document",
			zap.String("id", doc.ID),
			zap.Int("chunks", doc.NumChunks))
		cmd.Printf("Ingested %s (%d chunks)\n", doc.ID, doc.NumChunks)
	}

	return nil
}
