package dto

import "intern-match/internal/usecase"

type StatsResponse struct {
	TotalUsers      int `json:"total_users"`
	TotalCandidates int `json:"total_candidates"`
	TotalPostings   int `json:"total_postings"`
	TotalMatches    int `json:"total_matches"`
}

func NewStatsResponse(s usecase.Stats) StatsResponse {
	return StatsResponse{
		TotalUsers:      s.TotalUsers,
		TotalCandidates: s.TotalCandidates,
		TotalPostings:   s.TotalPostings,
		TotalMatches:    s.TotalMatches,
	}
}
