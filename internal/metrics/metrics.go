// Package metrics exposes Prometheus collectors for ranking and résumé analysis.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MetricRankingsTotal        = "internmatch_rankings_total"
	MetricRankingDuration      = "internmatch_ranking_duration_seconds"
	MetricPairsScoredTotal     = "internmatch_pairs_scored_total"
	MetricResumeAnalysesTotal  = "internmatch_resume_analyses_total"
	MetricResumeQualityScore   = "internmatch_resume_quality_score"
	MetricProfilesCreatedTotal = "internmatch_profiles_created_total"
	MetricCacheHitsTotal       = "internmatch_cache_hits_total"
	MetricCacheMissesTotal     = "internmatch_cache_misses_total"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"

	ResumeCacheHit  = "cache_hit"
	ResumeAnalyzed  = "analyzed"
	ResumeUndecoded = "decode_failed"
)

// Metrics is safe for concurrent use.
type Metrics struct {
	rankings        *prometheus.CounterVec
	rankingDuration prometheus.Histogram
	pairsScored     prometheus.Counter
	resumeAnalyses  *prometheus.CounterVec
	resumeScore     prometheus.Histogram
	profilesCreated *prometheus.CounterVec
}

// NewMetrics builds the collectors without registering them.
func NewMetrics() *Metrics {
	return &Metrics{
		rankings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRankingsTotal,
				Help: "Total number of ranking calls by outcome",
			},
			[]string{"status"},
		),
		rankingDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricRankingDuration,
				Help:    "Histogram of ranking duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
		),
		pairsScored: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: MetricPairsScoredTotal,
				Help: "Total number of candidate/posting pairs scored",
			},
		),
		resumeAnalyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricResumeAnalysesTotal,
				Help: "Total number of résumé analyses by format and outcome",
			},
			[]string{"format", "outcome"},
		),
		resumeScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricResumeQualityScore,
				Help:    "Distribution of résumé quality scores",
				Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			},
		),
		profilesCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricProfilesCreatedTotal,
				Help: "Total number of stored profiles by kind",
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.rankings,
		m.rankingDuration,
		m.pairsScored,
		m.resumeAnalyses,
		m.resumeScore,
		m.profilesCreated,
	}
}

// ObserveRanking records one ranker call.
func (m *Metrics) ObserveRanking(pairs int, duration time.Duration, degraded bool) {
	if m == nil {
		return
	}
	status := StatusOK
	if degraded {
		status = StatusDegraded
	}
	m.rankings.WithLabelValues(status).Inc()
	m.rankingDuration.Observe(duration.Seconds())
	if !degraded && pairs > 0 {
		m.pairsScored.Add(float64(pairs))
	}
}

func (m *Metrics) ObserveResumeAnalysis(format, outcome string, score int) {
	if m == nil {
		return
	}
	m.resumeAnalyses.WithLabelValues(format, outcome).Inc()
	if outcome != ResumeCacheHit {
		m.resumeScore.Observe(float64(score))
	}
}

func (m *Metrics) IncProfilesCreated(kind string) {
	if m == nil {
		return
	}
	m.profilesCreated.WithLabelValues(kind).Inc()
}

// CacheCounters exposes an externally kept hit/miss tally as counters read
// at scrape time.
func CacheCounters(stats func() (hits, misses uint64)) []prometheus.Collector {
	return []prometheus.Collector{
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{Name: MetricCacheHitsTotal, Help: "Résumé analysis cache hits"},
			func() float64 {
				h, _ := stats()
				return float64(h)
			},
		),
		prometheus.NewCounterFunc(
			prometheus.CounterOpts{Name: MetricCacheMissesTotal, Help: "Résumé analysis cache misses"},
			func() float64 {
				_, m := stats()
				return float64(m)
			},
		),
	}
}

func Handler(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
