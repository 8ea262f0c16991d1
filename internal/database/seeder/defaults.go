package seeder

import (
	"intern-match/internal/domain/profile"
	appseeder "intern-match/internal/seeder"
)

func Defaults(candidates profile.CandidateRepository, postings profile.PostingRepository) []Seeder {
	return []Seeder{
		appseeder.PostingSeeder{Repo: postings, Postings: appseeder.SamplePostings()},
		appseeder.CandidateSeeder{Repo: candidates, Candidates: appseeder.SampleCandidates()},
	}
}
