package resume

import "regexp"

const (
	NotFound     = "Not found"
	NotSpecified = "Not specified"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	// Loose on purpose: any 3-3-4 digit run with optional country code and
	// separators matches, including non-phone numbers.
	phoneRe = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

type Extractor interface {
	Email(text string) string
	Phone(text string) string
	Skills(text string) []string
	Education(text string) []string
}

type RuleExtractor struct {
	skills    KeywordMatcher
	education KeywordMatcher
}

func NewRuleExtractor(skills, education KeywordMatcher) *RuleExtractor {
	if skills == nil {
		skills = SkillRules
	}
	if education == nil {
		education = EducationRules
	}
	return &RuleExtractor{skills: skills, education: education}
}

func (e *RuleExtractor) Email(text string) string {
	if m := emailRe.FindString(text); m != "" {
		return m
	}
	return NotFound
}

func (e *RuleExtractor) Phone(text string) string {
	if m := phoneRe.FindString(text); m != "" {
		return m
	}
	return NotFound
}

func (e *RuleExtractor) Skills(text string) []string {
	return e.skills.Match(text)
}

// Education returns the matched degree labels, or a single NotSpecified
// marker when nothing matched.
func (e *RuleExtractor) Education(text string) []string {
	found := e.education.Match(text)
	if len(found) == 0 {
		return []string{NotSpecified}
	}
	return found
}

var _ Extractor = (*RuleExtractor)(nil)
