package resume

import "strings"

// Rule maps a lowercase substring pattern to the label reported when it is found.
type Rule struct {
	Pattern string
	Label   string
}

// KeywordMatcher reports the labels whose patterns occur in a text.
type KeywordMatcher interface {
	Match(text string) []string
}

// RuleTable is a case-insensitive substring matcher. Labels are reported
// once each, in table order. Patterns are not word-bounded, so "go" also
// hits inside "google".
type RuleTable []Rule

func (t RuleTable) Match(text string) []string {
	lower := strings.ToLower(text)
	out := make([]string, 0)
	seen := make(map[string]struct{}, len(t))
	for _, r := range t {
		if r.Pattern == "" || !strings.Contains(lower, strings.ToLower(r.Pattern)) {
			continue
		}
		if _, ok := seen[r.Label]; ok {
			continue
		}
		seen[r.Label] = struct{}{}
		out = append(out, r.Label)
	}
	return out
}

var SkillRules = RuleTable{
	{"python", "Python"},
	{"java", "Java"},
	{"javascript", "Javascript"},
	{"react", "React"},
	{"node", "Node"},
	{"angular", "Angular"},
	{"vue", "Vue"},
	{"c++", "C++"},
	{"c#", "C#"},
	{"ruby", "Ruby"},
	{"php", "Php"},
	{"swift", "Swift"},
	{"kotlin", "Kotlin"},
	{"go", "Go"},
	{"rust", "Rust"},
	{"html", "Html"},
	{"css", "Css"},
	{"sql", "Sql"},
	{"mongodb", "Mongodb"},
	{"postgresql", "Postgresql"},
	{"mysql", "Mysql"},
	{"aws", "Aws"},
	{"azure", "Azure"},
	{"gcp", "Gcp"},
	{"docker", "Docker"},
	{"kubernetes", "Kubernetes"},
	{"git", "Git"},
	{"machine learning", "Machine Learning"},
	{"deep learning", "Deep Learning"},
	{"data science", "Data Science"},
	{"ai", "Ai"},
	{"tensorflow", "Tensorflow"},
	{"pytorch", "Pytorch"},
	{"scikit-learn", "Scikit-Learn"},
	{"pandas", "Pandas"},
	{"numpy", "Numpy"},
	{"flask", "Flask"},
	{"django", "Django"},
	{"spring boot", "Spring Boot"},
	{"express", "Express"},
	{"agile", "Agile"},
	{"scrum", "Scrum"},
	{"devops", "Devops"},
	{"ci/cd", "Ci/Cd"},
	{"communication", "Communication"},
	{"teamwork", "Teamwork"},
	{"leadership", "Leadership"},
	{"problem solving", "Problem Solving"},
}

var EducationRules = RuleTable{
	{"bachelor", "BACHELOR"},
	{"master", "MASTER"},
	{"phd", "PHD"},
	{"diploma", "DIPLOMA"},
	{"degree", "DEGREE"},
	{"b.tech", "B.TECH"},
	{"m.tech", "M.TECH"},
	{"bca", "BCA"},
	{"mca", "MCA"},
	{"bba", "BBA"},
	{"mba", "MBA"},
}
