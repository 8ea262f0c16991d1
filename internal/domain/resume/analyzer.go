package resume

import "strings"

type Info struct {
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Skills       []string `json:"skills"`
	Education    []string `json:"education"`
	QualityScore int      `json:"score"`
	WordCount    int      `json:"word_count"`
}

type Analyzer struct {
	extractor Extractor
}

func NewAnalyzer(extractor Extractor) *Analyzer {
	if extractor == nil {
		extractor = NewRuleExtractor(nil, nil)
	}
	return &Analyzer{extractor: extractor}
}

func (a *Analyzer) Analyze(text string, experienceYears int) Info {
	email := a.extractor.Email(text)
	phone := a.extractor.Phone(text)
	skills := a.extractor.Skills(text)
	education := a.extractor.Education(text)
	words := len(strings.Fields(text))

	score := Score(ScoreInput{
		Skills:          skills,
		WordCount:       words,
		HasEmail:        email != NotFound,
		HasPhone:        phone != NotFound,
		HasEducation:    HasEducation(education),
		ExperienceYears: experienceYears,
	})

	return Info{
		Email:        email,
		Phone:        phone,
		Skills:       skills,
		Education:    education,
		QualityScore: score,
		WordCount:    words,
	}
}

// HasEducation reports whether education holds real degree labels rather
// than the NotSpecified marker.
func HasEducation(education []string) bool {
	if len(education) == 0 {
		return false
	}
	for _, e := range education {
		if e == NotSpecified {
			return false
		}
	}
	return true
}
