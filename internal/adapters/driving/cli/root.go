// Package cli provides the raglab command line interface. It is the
// driving adapter that wires configuration, storage, retrieval, and the
// HTTP and terminal frontends together.
package cli

import (
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "raglab",
	Short: "Course corpus question answering with a terminal dashboard",
	Long: `raglab serves a retrieval-augmented question answering API over a
fixed course corpus and ships a terminal dashboard for inspecting
corpus statistics and the historical question log.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
