package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type resumeCacheKeyInput struct {
	Format          string `json:"format"`
	Digest          string `json:"digest"`
	ExperienceYears int    `json:"experience_years"`
}

// ResumeAnalysisCacheKey identifies an analysis by file content, not by
// filename, so renamed uploads still hit.
func ResumeAnalysisCacheKey(format string, data []byte, experienceYears int) string {
	content := sha256.Sum256(data)

	in := resumeCacheKeyInput{
		Format:          strings.ToLower(strings.TrimSpace(format)),
		Digest:          hex.EncodeToString(content[:]),
		ExperienceYears: experienceYears,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "resume:analysis:" + hex.EncodeToString(sum[:])
}
