package main

import (
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/anirbans/formsense/internal/measure"
)

var measureOpts struct {
	InputPath  string
	OutputPath string
	WidthPx    float64
	HeightPx   float64
}

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Compute per-frame limb lengths and cm-space joint maps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMeasure()
	},
}

func init() {
	measureCmd.Flags().StringVarP(&measureOpts.InputPath, "input", "i", "", "Path to landmark sequence JSON")
	measureCmd.Flags().StringVarP(&measureOpts.OutputPath, "output", "o", "-", "Output path for the measurement report JSON (- for stdout)")
	measureCmd.Flags().Float64VarP(&measureOpts.WidthPx, "width", "W", 0, "Source frame width in pixels")
	measureCmd.Flags().Float64VarP(&measureOpts.HeightPx, "height", "H", 0, "Source frame height in pixels")
	measureCmd.MarkFlagRequired("input")
	measureCmd.MarkFlagRequired("width")
	measureCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(measureCmd)
}

// runMeasure drives the measurement branch: for every frame it derives
// a scale from the configured user height and reports limb lengths and
// cm-space joints.
func runMeasure() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seq, err := readSequence(measureOpts.InputPath)
	if err != nil {
		return err
	}

	dims := measure.Dims{Width: measureOpts.WidthPx, Height: measureOpts.HeightPx}
	analyzer := measure.NewBodyAnalyzer(cfg.UserHeightCM)

	ids := seq.IDs()
	bar := progressbar.Default(int64(len(ids)), "measuring")

	reports := make(map[string]measure.Report, len(ids))
	for _, id := range ids {
		reports[strconv.Itoa(id)] = analyzer.AnalyzeLandmarks(seq.Frames[id], dims)
		bar.Add(1)
	}

	return writeJSON(measureOpts.OutputPath, reports)
}
