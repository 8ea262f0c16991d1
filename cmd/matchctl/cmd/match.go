package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"intern-match/internal/delivery/http/dto"
	"intern-match/internal/domain/matching"
	"intern-match/internal/domain/profile"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank candidate/internship pairs from JSON files without a server",
	RunE:  runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().String("candidates", "", "JSON file with an array of candidate records")
	matchCmd.Flags().String("postings", "", "JSON file with an array of internship records")
	matchCmd.Flags().Int("top-n", matching.DefaultTopN, "number of pairs to print")
	matchCmd.Flags().Int("max-features", matching.DefaultMaxFeatures, "vocabulary size cap")
	_ = matchCmd.MarkFlagRequired("candidates")
	_ = matchCmd.MarkFlagRequired("postings")
}

type matchOutput struct {
	Candidate       string   `json:"candidate"`
	Posting         string   `json:"posting"`
	MatchScore      float64  `json:"match_score"`
	SimilarityScore float64  `json:"similarity_score"`
	SkillScore      float64  `json:"skill_score"`
	MatchedSkills   []string `json:"matched_skills"`
}

func runMatch(cmd *cobra.Command, _ []string) error {
	candPath, _ := cmd.Flags().GetString("candidates")
	postPath, _ := cmd.Flags().GetString("postings")
	topN, _ := cmd.Flags().GetInt("top-n")
	maxFeatures, _ := cmd.Flags().GetInt("max-features")

	var candRecords []map[string]any
	if err := readJSONFile(candPath, &candRecords); err != nil {
		return err
	}
	var postRecords []map[string]any
	if err := readJSONFile(postPath, &postRecords); err != nil {
		return err
	}

	candidates := make([]profile.Candidate, 0, len(candRecords))
	for _, r := range candRecords {
		candidates = append(candidates, dto.CandidateFromFields(r))
	}
	postings := make([]profile.Posting, 0, len(postRecords))
	for _, r := range postRecords {
		postings = append(postings, dto.PostingFromFields(r))
	}

	ranker := matching.NewRanker(maxFeatures, newLogger(cmd), nil)
	results := ranker.Rank(profile.CandidatesForMatching(candidates), profile.PostingsForMatching(postings), topN)

	out := make([]matchOutput, 0, len(results))
	for _, r := range results {
		matched := r.MatchedSkills
		if matched == nil {
			matched = []string{}
		}
		out = append(out, matchOutput{
			Candidate:       label(candidates[r.CandidateIndex].Name, r.CandidateIndex),
			Posting:         label(postings[r.PostingIndex].Title, r.PostingIndex),
			MatchScore:      r.CombinedScore,
			SimilarityScore: matching.Round2(r.SimilarityScore),
			SkillScore:      matching.Round2(r.SkillScore),
			MatchedSkills:   matched,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func readJSONFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func label(name string, idx int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("#%d", idx)
}
