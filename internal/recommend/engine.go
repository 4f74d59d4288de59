package recommend

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/omar221neva/FinalGp/internal/models"
)

// DefaultTopN is used when the caller does not ask for a size.
const DefaultTopN = 5

// Recommend ranks the catalog against the listings in bookedIDs and returns
// at most topN display records, never including a booked listing.
//
// Empty input (no bookings, empty catalog, topN <= 0, or no booked ID found
// in the catalog) yields an empty, non-nil slice. Any other failure is
// returned as a *ComputationError and no partial result is produced.
func Recommend(bookedIDs []string, catalog []models.Listing, topN int) (out []models.DisplayRecord, err error) {
	stage := "normalize"
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &ComputationError{Stage: stage, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	empty := []models.DisplayRecord{}
	if len(catalog) == 0 || len(bookedIDs) == 0 || topN <= 0 {
		return empty, nil
	}

	pictures := make([][]string, len(catalog))
	for i, l := range catalog {
		p, err := NormalizePictures(l.Pictures)
		if err != nil {
			return nil, &ComputationError{Stage: stage, Err: fmt.Errorf("listing %s: %w", l.ID, err)}
		}
		pictures[i] = p
	}

	stage = "vectorize"
	vectors, err := Vectorize(BuildFeatures(catalog))
	if err != nil {
		return nil, &ComputationError{Stage: stage, Err: err}
	}
	sim := CosineMatrix(vectors)

	stage = "rank"
	booked := ResolveBooked(bookedIDs, catalog)
	if len(booked) == 0 {
		return empty, nil
	}

	order := Rank(sim.MeanRows(booked), catalog, booked, topN)
	out = make([]models.DisplayRecord, len(order))
	for i, pos := range order {
		out[i] = ToDisplay(catalog[pos], pictures[pos])
	}
	return out, nil
}

// ResolveBooked returns the catalog positions whose ID is in bookedIDs, in
// ascending order. Duplicate bookings collapse and unknown IDs are ignored.
func ResolveBooked(bookedIDs []string, catalog []models.Listing) []int {
	seed := make(map[string]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		seed[id] = struct{}{}
	}
	var positions []int
	for i, l := range catalog {
		if _, ok := seed[l.ID]; ok {
			positions = append(positions, i)
		}
	}
	return positions
}

// Rank orders catalog positions by descending score, breaking ties by
// ascending listing ID and then position, drops the booked positions and
// keeps the first topN.
func Rank(scores []float64, catalog []models.Listing, booked []int, topN int) []int {
	if topN <= 0 {
		return []int{}
	}
	skip := make(map[int]struct{}, len(booked))
	for _, b := range booked {
		skip[b] = struct{}{}
	}

	candidates := make([]int, 0, len(scores))
	for i := range scores {
		if _, ok := skip[i]; !ok {
			candidates = append(candidates, i)
		}
	}
	slices.SortStableFunc(candidates, func(a, b int) int {
		if scores[a] != scores[b] {
			return cmp.Compare(scores[b], scores[a])
		}
		return cmp.Compare(catalog[a].ID, catalog[b].ID)
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}
