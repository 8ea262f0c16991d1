package dto

import "intern-match/internal/domain/resume"

type ResumeAnalysisResponse struct {
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Skills    []string `json:"skills"`
	Education []string `json:"education"`
	Score     int      `json:"score"`
	WordCount int      `json:"word_count"`
}

func NewResumeAnalysisResponse(info resume.Info) ResumeAnalysisResponse {
	skills := info.Skills
	if skills == nil {
		skills = []string{}
	}
	return ResumeAnalysisResponse{
		Email:     info.Email,
		Phone:     info.Phone,
		Skills:    skills,
		Education: info.Education,
		Score:     info.QualityScore,
		WordCount: info.WordCount,
	}
}
