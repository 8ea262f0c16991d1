package resume

type ScoreInput struct {
	Skills          []string
	WordCount       int
	HasEmail        bool
	HasPhone        bool
	HasEducation    bool
	ExperienceYears int
}

// Score returns the résumé quality score in [0,100]:
// skills 40, length 20, contact 20, education 10, experience 10.
func Score(in ScoreInput) int {
	total := 0.0

	total += float64(minInt(len(in.Skills)*4, 40))

	if in.WordCount > 100 {
		total += minFloat(float64(in.WordCount)/50, 20)
	}

	if in.HasEmail {
		total += 10
	}
	if in.HasPhone {
		total += 10
	}

	if in.HasEducation {
		total += 10
	}

	total += float64(clampInt(in.ExperienceYears*2, 0, 10))

	return clampInt(int(total), 0, 100)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
