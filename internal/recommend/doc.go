// Package recommend implements the content-based property recommender.
//
// A request flows through two stages:
//
//   - Feature building: every listing becomes one text document made of its
//     description, property type and amenities, kept in catalog order.
//   - Similarity ranking: documents are vectorized with TF-IDF (English stop
//     words removed, smooth idf, L2-normalized rows), compared pairwise with
//     cosine similarity, and every listing is scored by its mean similarity to
//     the listings the user already booked. Booked listings are dropped from
//     the output and the rest is truncated to the requested size.
//
// Everything is recomputed per call. Nothing is cached and no state is kept
// between invocations, so the package is safe for concurrent use.
package recommend
