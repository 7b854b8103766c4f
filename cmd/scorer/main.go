// Package main provides the entry point for the TrackifyJobs resume scoring
// service and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scorer",
	Short: "TrackifyJobs resume scoring",
	Long:  "Scores resumes against job descriptions using phrase similarity, skill extraction, and score fusion, as an HTTP service or a one-shot CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
