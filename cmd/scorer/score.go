package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coltonk1/trackify-jobs/internal/config"
	"github.com/coltonk1/trackify-jobs/internal/ingestion"
	"github.com/coltonk1/trackify-jobs/internal/logger"
	"github.com/coltonk1/trackify-jobs/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against one job description",
	Long:  "Score a resume file (.pdf or .txt) against a job description given as a text file or a posting URL, and print the score record as JSON.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreJobURL     string
	scorePreset     string
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreResumeFile, "resume", "", "Path to the resume file (.pdf or .txt)")
	scoreCmd.Flags().StringVar(&scoreJobFile, "job", "", "Path to a job description text file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL of a job posting to fetch")
	scoreCmd.Flags().StringVar(&scorePreset, "preset", "", "Scoring preset (overrides SCORING_PRESET)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a human-readable score breakdown to stderr")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	if scoreResumeFile == "" {
		return fmt.Errorf("--resume is required")
	}
	if (scoreJobFile == "") == (scoreJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if scorePreset != "" {
		cfg.Preset = scorePreset
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	ctx := context.Background()

	// Read the resume before building any API clients so bad paths fail
	// fast.
	data, err := os.ReadFile(scoreResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	resumeText, err := ingestion.Extract(filepath.Base(scoreResumeFile), data)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	var jobText string
	if scoreJobFile != "" {
		jobData, err := os.ReadFile(scoreJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jobText = string(jobData)
	} else {
		jobText, err = ingestion.FetchJobText(ctx, scoreJobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	record, err := a.scorer.Score(ctx, resumeText, jobText)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if scoreVerbose {
		p := observability.NewPrinter(os.Stderr)
		p.PrintScoreRecord(record)
		p.PrintMatchedSkills("HARD SKILL MATCHES", record.MatchedHardSkills)
		p.PrintMatchedSkills("SOFT SKILL MATCHES", record.MatchedSoftSkills)
		p.PrintMatchedSkills("CERTIFICATION MATCHES", record.MatchedCertifications)
	}

	jsonBytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))

	return nil
}
