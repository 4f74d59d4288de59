package recommend

import (
	"errors"
	"fmt"
)

// ErrEmptyVocabulary is returned when no document contains a usable term.
var ErrEmptyVocabulary = errors.New("empty vocabulary; perhaps the documents only contain stop words")

// ComputationError wraps any failure raised while building a recommendation.
// Stage names the step that failed: normalize, vectorize or rank.
type ComputationError struct {
	Stage string
	Err   error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("recommendation failed during %s: %v", e.Stage, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}
