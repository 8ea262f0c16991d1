package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"intern-match/internal/delivery/http/dto"
	"intern-match/internal/domain/resume"
	"intern-match/internal/infrastructure/decoder"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Extract contact details, skills and a quality score from a résumé",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Int("experience-years", 0, "years of experience to credit")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	years, _ := cmd.Flags().GetInt("experience-years")
	if years < 0 {
		return fmt.Errorf("--experience-years must not be negative")
	}

	path := args[0]
	if _, err := decoder.FormatOf(path); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	text, err := decoder.New().Decode(path, data)
	if err != nil {
		newLogger(cmd).Printf("[Resume] decode failed file=%q err=%v", path, err)
		text = ""
	}

	info := resume.NewAnalyzer(nil).Analyze(text, years)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewResumeAnalysisResponse(info))
}
