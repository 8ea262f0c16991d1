package matching

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
)

const DefaultMaxFeatures = 500

var ErrTooFewDocuments = errors.New("at least two documents are required")

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

var (
	stopWordsOnce sync.Once
	stopWords     map[string]struct{}
)

// EnglishStopWords returns the shared English stop-word set.
func EnglishStopWords() map[string]struct{} {
	stopWordsOnce.Do(func() {
		tm := analysis.NewTokenMap()
		if err := tm.LoadBytes(en.EnglishStopWords); err != nil {
			stopWords = map[string]struct{}{}
			return
		}
		stopWords = make(map[string]struct{}, len(tm))
		for w := range tm {
			stopWords[w] = struct{}{}
		}
	})
	return stopWords
}

// Vector is a sparse vector with strictly increasing indices.
type Vector struct {
	Indices []int
	Values  []float64
}

func (v Vector) IsZero() bool {
	return len(v.Indices) == 0
}

type VectorSpace struct {
	Vocabulary map[string]int
	Vectors    []Vector
}

type Vectorizer struct {
	maxFeatures int
	stopWords   map[string]struct{}
}

func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{maxFeatures: maxFeatures, stopWords: EnglishStopWords()}
}

// FitTransform builds a unigram+bigram vocabulary over docs, keeps the
// maxFeatures terms with the highest document frequency (ties broken
// lexicographically) and returns one L2-normalized tf-idf vector per doc,
// using smooth idf: ln((1+n)/(1+df)) + 1.
func (v *Vectorizer) FitTransform(docs []string) (VectorSpace, error) {
	if len(docs) < 2 {
		return VectorSpace{}, ErrTooFewDocuments
	}

	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, d := range docs {
		c := v.termCounts(d)
		counts[i] = c
		for term := range c {
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		vocab[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]Vector, len(docs))
	for i, c := range counts {
		vectors[i] = project(c, vocab, terms, idf)
	}

	return VectorSpace{Vocabulary: vocab, Vectors: vectors}, nil
}

func (v *Vectorizer) termCounts(doc string) map[string]int {
	raw := tokenRe.FindAllString(strings.ToLower(doc), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, stop := v.stopWords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}

	out := make(map[string]int, len(tokens)*2)
	for i, t := range tokens {
		out[t]++
		if i > 0 {
			out[tokens[i-1]+" "+t]++
		}
	}
	return out
}

func project(counts map[string]int, vocab map[string]int, terms []string, idf []float64) Vector {
	idx := make([]int, 0, len(counts))
	for term := range counts {
		if i, ok := vocab[term]; ok {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return Vector{}
	}
	sort.Ints(idx)

	vals := make([]float64, len(idx))
	var sumSq float64
	for k, i := range idx {
		w := float64(counts[terms[i]]) * idf[i]
		vals[k] = w
		sumSq += w * w
	}
	norm := math.Sqrt(sumSq)
	if norm == 0 {
		return Vector{}
	}
	for k := range vals {
		vals[k] /= norm
	}
	return Vector{Indices: idx, Values: vals}
}
