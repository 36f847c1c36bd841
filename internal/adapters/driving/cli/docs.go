package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var docsJSON bool

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List documents in the corpus",
	RunE:  runDocs,
}

func init() {
	docsCmd.Flags().BoolVar(&docsJSON, "json", false, "output documents as JSON")
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, _ []string) error {
	b, err := newBackend()
	if err != nil {
		return err
	}
	defer b.close()

	docs, err := b.ingest.ListDocuments(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if docsJSON {
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal documents: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(docs) == 0 {
		cmd.Println("No documents in the corpus. Run `raglab seed` or `raglab ingest`.")
		return nil
	}

	for i := range docs {
		cmd.Printf("%-30s %-40s %3d chunks  %s\n",
			docs[i].ID, docs[i].Title, docs[i].NumChunks,
			docs[i].CreatedAt.Local().Format("2006-01-02"))
	}
	return nil
}
