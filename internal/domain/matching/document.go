package matching

import (
	"strings"

	"github.com/google/uuid"
)

type Kind int

const (
	KindCandidate Kind = iota
	KindPosting
)

var (
	candidateFields = []string{"skills", "education", "experience", "interests", "certifications"}
	postingFields   = []string{"requiredSkills", "description", "requirements", "department", "title"}
)

// Fields returns the ordered field names that make up a document of this kind.
func (k Kind) Fields() []string {
	switch k {
	case KindPosting:
		return append([]string(nil), postingFields...)
	default:
		return append([]string(nil), candidateFields...)
	}
}

func (k Kind) String() string {
	if k == KindPosting {
		return "posting"
	}
	return "candidate"
}

type Candidate struct {
	Ref            uuid.UUID
	Skills         string
	Education      string
	Experience     string
	Interests      string
	Certifications string
}

type Posting struct {
	Ref            uuid.UUID
	RequiredSkills string
	Description    string
	Requirements   string
	Department     string
	Title          string
}

// CandidateFromFields builds a Candidate from a loosely typed record. Unknown
// keys are ignored; missing or non-text values become empty strings.
func CandidateFromFields(ref uuid.UUID, fields map[string]any) Candidate {
	return Candidate{
		Ref:            ref,
		Skills:         TextField(fields, "skills"),
		Education:      TextField(fields, "education"),
		Experience:     TextField(fields, "experience"),
		Interests:      TextField(fields, "interests"),
		Certifications: TextField(fields, "certifications"),
	}
}

func PostingFromFields(ref uuid.UUID, fields map[string]any) Posting {
	return Posting{
		Ref:            ref,
		RequiredSkills: TextField(fields, "requiredSkills", "required_skills"),
		Description:    TextField(fields, "description"),
		Requirements:   TextField(fields, "requirements"),
		Department:     TextField(fields, "department"),
		Title:          TextField(fields, "title"),
	}
}

func (c Candidate) Document() string {
	return joinDocument(c.Skills, c.Education, c.Experience, c.Interests, c.Certifications)
}

func (p Posting) Document() string {
	return joinDocument(p.RequiredSkills, p.Description, p.Requirements, p.Department, p.Title)
}

func joinDocument(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, " ")
}

// TextField returns the first of keys present in fields as text. A string is
// returned as is and a list of strings is joined with ", ". Anything else,
// including a missing key, is "".
func TextField(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			return t
		case []string:
			return strings.Join(t, ", ")
		case []any:
			parts := make([]string, 0, len(t))
			for _, item := range t {
				if s, ok := item.(string); ok {
					parts = append(parts, s)
				}
			}
			return strings.Join(parts, ", ")
		default:
			return ""
		}
	}
	return ""
}
