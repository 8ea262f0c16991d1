package profile

import (
	"errors"
	"strings"
	"time"

	"intern-match/internal/domain/matching"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

type Candidate struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Phone          string
	Education      string
	Institution    string
	GraduationYear string
	Skills         string
	Experience     string
	Interests      string
	Availability   string
	WorkMode       string
	Certifications []string
	Portfolio      string
	LinkedIn       string
	GitHub         string
	ResumeScore    int
	CreatedAt      time.Time
}

type Posting struct {
	ID               uuid.UUID
	Title            string
	Company          string
	Location         string
	Department       string
	Duration         string
	Stipend          string
	WorkMode         string
	Description      string
	RequiredSkills   string
	Requirements     string
	Benefits         []string
	Deadline         string
	InterviewProcess string
	Mentorship       string
	CreatedAt        time.Time
}

// Matching returns the subset of the record the ranker scores on.
func (c Candidate) Matching() matching.Candidate {
	return matching.Candidate{
		Ref:            c.ID,
		Skills:         c.Skills,
		Education:      c.Education,
		Experience:     c.Experience,
		Interests:      c.Interests,
		Certifications: strings.Join(c.Certifications, ", "),
	}
}

func (p Posting) Matching() matching.Posting {
	return matching.Posting{
		Ref:            p.ID,
		RequiredSkills: p.RequiredSkills,
		Description:    p.Description,
		Requirements:   p.Requirements,
		Department:     p.Department,
		Title:          p.Title,
	}
}

// Clone returns a copy that shares no slices with c.
func (c Candidate) Clone() Candidate {
	c.Certifications = append([]string(nil), c.Certifications...)
	return c
}

func (p Posting) Clone() Posting {
	p.Benefits = append([]string(nil), p.Benefits...)
	return p
}

func CandidatesForMatching(in []Candidate) []matching.Candidate {
	out := make([]matching.Candidate, 0, len(in))
	for _, c := range in {
		out = append(out, c.Matching())
	}
	return out
}

func PostingsForMatching(in []Posting) []matching.Posting {
	out := make([]matching.Posting, 0, len(in))
	for _, p := range in {
		out = append(out, p.Matching())
	}
	return out
}

// SplitList turns a comma separated form value into trimmed, non-empty items.
func SplitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
