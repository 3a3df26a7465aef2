package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anirbans/formsense/internal/pipeline"
	"github.com/anirbans/formsense/internal/pose"
)

var analyzeOpts struct {
	InputPath  string
	OutputPath string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Normalize, compute joint kinematics, and apply the rule gate",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(analyzeOpts.InputPath, analyzeOpts.OutputPath)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOpts.InputPath, "input", "i", "", "Path to landmark sequence JSON")
	analyzeCmd.Flags().StringVarP(&analyzeOpts.OutputPath, "output", "o", "-", "Output path for the enriched sequence JSON (- for stdout)")
	analyzeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(inputPath, outputPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seq, err := readSequence(inputPath)
	if err != nil {
		return err
	}

	out := pipeline.New(cfg).Run(seq)
	return writeJSON(outputPath, out)
}

// readSequence loads a sequence from the frame-id keyed JSON mapping
// produced by the upstream pose detector.
func readSequence(path string) (pose.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pose.Sequence{}, fmt.Errorf("read sequence: %w", err)
	}

	var seq pose.Sequence
	if err := json.Unmarshal(data, &seq); err != nil {
		return pose.Sequence{}, fmt.Errorf("parse sequence: %w", err)
	}
	return seq, nil
}

// writeJSON marshals v with indentation to the given path, or to
// stdout when the path is "-".
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
