package dto

import (
	"strings"
	"time"

	"intern-match/internal/domain/profile"

	"github.com/google/uuid"
)

// CandidateRequest mirrors the candidate form. Certifications arrive as a
// comma separated string.
type CandidateRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Education      string `json:"education"`
	Institution    string `json:"institution"`
	GraduationYear string `json:"graduation_year"`
	Skills         string `json:"skills"`
	Experience     string `json:"experience"`
	Interests      string `json:"interests"`
	Availability   string `json:"availability"`
	WorkMode       string `json:"work_mode"`
	Certifications string `json:"certifications"`
	Portfolio      string `json:"portfolio"`
	LinkedIn       string `json:"linkedin"`
	GitHub         string `json:"github"`
	ResumeScore    int    `json:"resume_score"`
}

func (r CandidateRequest) ToDomain() profile.Candidate {
	return profile.Candidate{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Education:      r.Education,
		Institution:    r.Institution,
		GraduationYear: r.GraduationYear,
		Skills:         r.Skills,
		Experience:     r.Experience,
		Interests:      r.Interests,
		Availability:   r.Availability,
		WorkMode:       r.WorkMode,
		Certifications: profile.SplitList(r.Certifications),
		Portfolio:      r.Portfolio,
		LinkedIn:       r.LinkedIn,
		GitHub:         r.GitHub,
		ResumeScore:    r.ResumeScore,
	}
}

type PostingRequest struct {
	Title            string `json:"title"`
	Company          string `json:"company"`
	Location         string `json:"location"`
	Department       string `json:"department"`
	Duration         string `json:"duration"`
	Stipend          string `json:"stipend"`
	WorkMode         string `json:"work_mode"`
	Description      string `json:"description"`
	RequiredSkills   string `json:"required_skills"`
	Requirements     string `json:"requirements"`
	Benefits         string `json:"benefits"`
	Deadline         string `json:"deadline"`
	InterviewProcess string `json:"interview_process"`
	Mentorship       string `json:"mentorship"`
}

func (r PostingRequest) ToDomain() profile.Posting {
	return profile.Posting{
		Title:            r.Title,
		Company:          r.Company,
		Location:         r.Location,
		Department:       r.Department,
		Duration:         r.Duration,
		Stipend:          r.Stipend,
		WorkMode:         r.WorkMode,
		Description:      r.Description,
		RequiredSkills:   r.RequiredSkills,
		Requirements:     r.Requirements,
		Benefits:         profile.SplitList(r.Benefits),
		Deadline:         r.Deadline,
		InterviewProcess: r.InterviewProcess,
		Mentorship:       r.Mentorship,
	}
}

type CandidateResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Education      string    `json:"education"`
	Institution    string    `json:"institution"`
	GraduationYear string    `json:"graduation_year"`
	Skills         string    `json:"skills"`
	Experience     string    `json:"experience"`
	Interests      string    `json:"interests"`
	Availability   string    `json:"availability"`
	WorkMode       string    `json:"work_mode"`
	Certifications []string  `json:"certifications"`
	Portfolio      string    `json:"portfolio"`
	LinkedIn       string    `json:"linkedin"`
	GitHub         string    `json:"github"`
	ResumeScore    int       `json:"resume_score"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewCandidateResponse(c profile.Candidate) CandidateResponse {
	certs := c.Certifications
	if certs == nil {
		certs = []string{}
	}
	return CandidateResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Education:      c.Education,
		Institution:    c.Institution,
		GraduationYear: c.GraduationYear,
		Skills:         c.Skills,
		Experience:     c.Experience,
		Interests:      c.Interests,
		Availability:   c.Availability,
		WorkMode:       c.WorkMode,
		Certifications: certs,
		Portfolio:      c.Portfolio,
		LinkedIn:       c.LinkedIn,
		GitHub:         c.GitHub,
		ResumeScore:    c.ResumeScore,
		CreatedAt:      c.CreatedAt,
	}
}

type PostingResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	Department       string    `json:"department"`
	Duration         string    `json:"duration"`
	Stipend          string    `json:"stipend"`
	WorkMode         string    `json:"work_mode"`
	Description      string    `json:"description"`
	RequiredSkills   string    `json:"required_skills"`
	Requirements     string    `json:"requirements"`
	Benefits         []string  `json:"benefits"`
	Deadline         string    `json:"deadline"`
	InterviewProcess string    `json:"interview_process"`
	Mentorship       string    `json:"mentorship"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewPostingResponse(p profile.Posting) PostingResponse {
	benefits := p.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return PostingResponse{
		ID:               p.ID,
		Title:            p.Title,
		Company:          p.Company,
		Location:         p.Location,
		Department:       p.Department,
		Duration:         p.Duration,
		Stipend:          p.Stipend,
		WorkMode:         p.WorkMode,
		Description:      p.Description,
		RequiredSkills:   p.RequiredSkills,
		Requirements:     p.Requirements,
		Benefits:         benefits,
		Deadline:         p.Deadline,
		InterviewProcess: p.InterviewProcess,
		Mentorship:       p.Mentorship,
		CreatedAt:        p.CreatedAt,
	}
}

func NewCandidateRequest(c profile.Candidate) CandidateRequest {
	return CandidateRequest{
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Education:      c.Education,
		Institution:    c.Institution,
		GraduationYear: c.GraduationYear,
		Skills:         c.Skills,
		Experience:     c.Experience,
		Interests:      c.Interests,
		Availability:   c.Availability,
		WorkMode:       c.WorkMode,
		Certifications: strings.Join(c.Certifications, ", "),
		Portfolio:      c.Portfolio,
		LinkedIn:       c.LinkedIn,
		GitHub:         c.GitHub,
		ResumeScore:    c.ResumeScore,
	}
}

func NewPostingRequest(p profile.Posting) PostingRequest {
	return PostingRequest{
		Title:            p.Title,
		Company:          p.Company,
		Location:         p.Location,
		Department:       p.Department,
		Duration:         p.Duration,
		Stipend:          p.Stipend,
		WorkMode:         p.WorkMode,
		Description:      p.Description,
		RequiredSkills:   p.RequiredSkills,
		Requirements:     p.Requirements,
		Benefits:         strings.Join(p.Benefits, ", "),
		Deadline:         p.Deadline,
		InterviewProcess: p.InterviewProcess,
		Mentorship:       p.Mentorship,
	}
}
