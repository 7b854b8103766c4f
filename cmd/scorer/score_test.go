package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetScoreFlags() {
	scoreResumeFile = ""
	scoreJobFile = ""
	scoreJobURL = ""
	scorePreset = ""
	scoreVerbose = false
}

func TestRunScoreRequiresResume(t *testing.T) {
	resetScoreFlags()
	scoreJobFile = "job.txt"

	err := runScore(nil, nil)
	assert.ErrorContains(t, err, "--resume is required")
}

func TestRunScoreRequiresExactlyOneJobSource(t *testing.T) {
	resetScoreFlags()
	scoreResumeFile = "resume.pdf"

	err := runScore(nil, nil)
	assert.ErrorContains(t, err, "exactly one of --job or --job-url")

	scoreJobFile = "job.txt"
	scoreJobURL = "https://example.com/posting"
	err = runScore(nil, nil)
	assert.ErrorContains(t, err, "exactly one of --job or --job-url")
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["score"])
}
