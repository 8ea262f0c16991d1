package usecase

import (
	"context"
	"log"
	"time"

	"intern-match/internal/domain/resume"
	"intern-match/internal/infrastructure/decoder"
	"intern-match/internal/metrics"
)

type AnalyzeResumeInput struct {
	Filename        string
	Data            []byte
	ExperienceYears int
}

type ResumeObserver interface {
	ObserveResumeAnalysis(format, outcome string, score int)
}

type ResumeUsecase interface {
	Analyze(ctx context.Context, in AnalyzeResumeInput) (resume.Info, error)
}

type Resume struct {
	decoder  decoder.Decoder
	analyzer *resume.Analyzer
	cache    AnalysisCache
	cacheTTL time.Duration
	observer ResumeObserver
	logger   *log.Logger
}

func NewResumeUsecase(
	dec decoder.Decoder,
	analyzer *resume.Analyzer,
	cache AnalysisCache,
	cacheTTL time.Duration,
	observer ResumeObserver,
	logger *log.Logger,
) *Resume {
	if logger == nil {
		logger = log.Default()
	}
	if analyzer == nil {
		analyzer = resume.NewAnalyzer(nil)
	}
	return &Resume{
		decoder:  dec,
		analyzer: analyzer,
		cache:    cache,
		cacheTTL: cacheTTL,
		observer: observer,
		logger:   logger,
	}
}

// Analyze decodes the upload and extracts résumé signals. A file that
// cannot be decoded is analyzed as empty text instead of failing, so the
// caller always gets the sentinel values and a zero score back.
func (u *Resume) Analyze(ctx context.Context, in AnalyzeResumeInput) (resume.Info, error) {
	format, err := decoder.FormatOf(in.Filename)
	if err != nil {
		return resume.Info{}, ErrUnsupportedFormat
	}
	if in.ExperienceYears < 0 {
		return resume.Info{}, ErrInvalidInput
	}

	key := ResumeAnalysisCacheKey(string(format), in.Data, in.ExperienceYears)
	if u.cache != nil {
		var cached resume.Info
		found, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Printf("[Resume] cache read failed key=%s err=%v", key, err)
		}
		if found {
			u.observe(string(format), metrics.ResumeCacheHit, cached.QualityScore)
			return cached, nil
		}
	}

	outcome := metrics.ResumeAnalyzed
	text, err := u.decoder.Decode(in.Filename, in.Data)
	if err != nil {
		u.logger.Printf("[Resume] decode failed file=%q format=%s bytes=%d err=%v", in.Filename, format, len(in.Data), err)
		text = ""
		outcome = metrics.ResumeUndecoded
	}

	info := u.analyzer.Analyze(text, in.ExperienceYears)

	if u.cache != nil && outcome == metrics.ResumeAnalyzed {
		if err := u.cache.SetJSON(ctx, key, info, u.cacheTTL); err != nil {
			u.logger.Printf("[Resume] cache write failed key=%s err=%v", key, err)
		}
	}

	u.observe(string(format), outcome, info.QualityScore)
	return info, nil
}

func (u *Resume) observe(format, outcome string, score int) {
	if u.observer == nil {
		return
	}
	u.observer.ObserveResumeAnalysis(format, outcome, score)
}

var _ ResumeUsecase = (*Resume)(nil)
