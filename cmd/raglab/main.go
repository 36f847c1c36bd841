package main

import (
	"fmt"
	"os"

	"github.com/AdityaB09/RAG-NLP-424-Project/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
