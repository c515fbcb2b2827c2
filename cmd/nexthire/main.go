// Package main provides the entry point for the NextHire resume analysis API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nexthire",
	Short: "NextHire resume analysis API server",
	Long:  "NextHire parses resumes into structured records, scores them against job descriptions with a hybrid regression and generative pipeline, and runs ranked job searches.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
