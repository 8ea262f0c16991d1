package dto

import (
	"intern-match/internal/domain/matching"
	"intern-match/internal/domain/profile"

	"github.com/google/uuid"
)

// CandidateFromFields builds the candidate of a match request. Fields of the
// wrong type are read as empty, and list fields accept either a comma
// separated string or an array.
func CandidateFromFields(fields map[string]any) profile.Candidate {
	m := matching.CandidateFromFields(uuid.Nil, fields)
	return profile.Candidate{
		Name:           matching.TextField(fields, "name"),
		Email:          matching.TextField(fields, "email"),
		Education:      m.Education,
		Skills:         m.Skills,
		Experience:     m.Experience,
		Interests:      m.Interests,
		Certifications: profile.SplitList(m.Certifications),
		WorkMode:       matching.TextField(fields, "work_mode"),
	}
}

func PostingFromFields(fields map[string]any) profile.Posting {
	m := matching.PostingFromFields(uuid.Nil, fields)
	return profile.Posting{
		Title:          m.Title,
		Company:        matching.TextField(fields, "company"),
		Department:     m.Department,
		Description:    m.Description,
		RequiredSkills: m.RequiredSkills,
		Requirements:   m.Requirements,
		WorkMode:       matching.TextField(fields, "work_mode"),
		Benefits:       profile.SplitList(matching.TextField(fields, "benefits")),
	}
}
