package recommend

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "lowercases and splits", text: "Beach Villa", want: []string{"beach", "villa"}},
		{name: "drops single characters", text: "a b cd", want: []string{"cd"}},
		{name: "drops stop words", text: "the house with a pool", want: []string{"house", "pool"}},
		{name: "splits on punctuation", text: `["Wifi","Hot_tub"]`, want: []string{"wifi", "hot_tub"}},
		{name: "keeps digits", text: "2br 4k tv", want: []string{"2br", "4k", "tv"}},
		{name: "empty text", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestVectorize(t *testing.T) {
	docs := []FeatureDocument{
		{ListingID: "1", Text: "beach villa villa"},
		{ListingID: "2", Text: "beach cabin"},
	}

	v, err := Vectorize(docs)
	if err != nil {
		t.Fatalf("Vectorize() error = %v", err)
	}

	wantVocab := []string{"beach", "cabin", "villa"}
	if !reflect.DeepEqual(v.Vocabulary, wantVocab) {
		t.Fatalf("Vocabulary = %v, want %v", v.Vocabulary, wantVocab)
	}

	// beach appears in both docs: idf = ln(3/3)+1 = 1; villa/cabin: ln(3/2)+1.
	rare := math.Log(1.5) + 1
	beach, villa := 1.0, 2*rare
	norm := math.Sqrt(beach*beach + villa*villa)
	if got := v.Weights.At(0, 0); math.Abs(got-beach/norm) > 1e-12 {
		t.Errorf("weight(0, beach) = %f, want %f", got, beach/norm)
	}
	if got := v.Weights.At(0, 2); math.Abs(got-villa/norm) > 1e-12 {
		t.Errorf("weight(0, villa) = %f, want %f", got, villa/norm)
	}
	if got := v.Weights.At(0, 1); got != 0 {
		t.Errorf("weight(0, cabin) = %f, want 0", got)
	}
}

func TestVectorize_EmptyVocabulary(t *testing.T) {
	docs := []FeatureDocument{{Text: "the and of"}, {Text: ""}}
	if _, err := Vectorize(docs); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("Vectorize() error = %v, want ErrEmptyVocabulary", err)
	}
}

func TestCosineMatrix(t *testing.T) {
	docs := []FeatureDocument{
		{Text: "beach villa pool"},
		{Text: "mountain cabin fireplace"},
		{Text: "beach house pool deck"},
		{Text: "the"},
	}
	v, err := Vectorize(docs)
	if err != nil {
		t.Fatalf("Vectorize() error = %v", err)
	}
	sim := CosineMatrix(v)

	if sim.Len() != len(docs) {
		t.Fatalf("Len() = %d, want %d", sim.Len(), len(docs))
	}
	for i := 0; i < 3; i++ {
		if d := sim.At(i, i); math.Abs(d-1) > 1e-9 {
			t.Errorf("At(%d, %d) = %f, want 1", i, i, d)
		}
	}
	for i := 0; i < sim.Len(); i++ {
		for j := 0; j < sim.Len(); j++ {
			if math.Abs(sim.At(i, j)-sim.At(j, i)) > 1e-12 {
				t.Errorf("matrix not symmetric at (%d, %d)", i, j)
			}
		}
	}
	if got := sim.At(0, 1); got != 0 {
		t.Errorf("At(0, 1) = %f, want 0 (no shared terms)", got)
	}
	if got := sim.At(0, 2); got <= 0 {
		t.Errorf("At(0, 2) = %f, want > 0", got)
	}
	if got := sim.At(3, 3); got != 0 {
		t.Errorf("At(3, 3) = %f, want 0 for an empty document", got)
	}

	mean := sim.MeanRows([]int{0, 2})
	want := (sim.At(0, 1) + sim.At(2, 1)) / 2
	if math.Abs(mean[1]-want) > 1e-12 {
		t.Errorf("MeanRows()[1] = %f, want %f", mean[1], want)
	}
}
