package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vectors is the TF-IDF representation of a set of documents.
// Row i belongs to document i; columns follow Vocabulary.
type Vectors struct {
	Vocabulary []string
	Weights    *mat.Dense
}

// Tokenize lowercases text and returns its terms: runs of at least two
// letters, digits or underscores, with English stop words removed.
func Tokenize(text string) []string {
	var (
		terms []string
		cur   []rune
	)
	flush := func() {
		if len(cur) >= 2 {
			t := string(cur)
			if !isStopWord(t) {
				terms = append(terms, t)
			}
		}
		cur = cur[:0]
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			cur = append(cur, r)
			continue
		}
		flush()
	}
	flush()
	return terms
}

// Vectorize weights every document with raw term counts times the smoothed
// idf ln((1+n)/(1+df))+1 and scales each row to unit length.
func Vectorize(docs []FeatureDocument) (*Vectors, error) {
	counts := make([]map[string]float64, len(docs))
	df := make(map[string]int)
	for i, d := range docs {
		tf := make(map[string]float64)
		for _, t := range Tokenize(d.Text) {
			tf[t]++
		}
		for t := range tf {
			df[t]++
		}
		counts[i] = tf
	}
	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	vocab := make([]string, 0, len(df))
	for t := range df {
		vocab = append(vocab, t)
	}
	sort.Strings(vocab)
	column := make(map[string]int, len(vocab))
	for j, t := range vocab {
		column[t] = j
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for j, t := range vocab {
		idf[j] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	w := mat.NewDense(len(docs), len(vocab), nil)
	for i, tf := range counts {
		for t, c := range tf {
			j := column[t]
			w.Set(i, j, c*idf[j])
		}
		row := w.RawRowView(i)
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
	}

	return &Vectors{Vocabulary: vocab, Weights: w}, nil
}
