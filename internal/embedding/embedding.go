// Package embedding turns free text into fixed-width vectors for
// similarity ranking.
package embedding

import (
	"context"
	"math"
)

// Embedding is a vector representation of a piece of text.
type Embedding struct {
	Vector []float32
}

// Dimensions returns the dimensionality of the embedding.
func (e Embedding) Dimensions() int {
	return len(e.Vector)
}

// Norm returns the Euclidean length of the vector.
func (e Embedding) Norm() float64 {
	var sum float64
	for _, v := range e.Vector {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

// Provider generates embeddings from text.
type Provider interface {
	// Embed generates an embedding for the given text.
	Embed(ctx context.Context, text string) (Embedding, error)

	// ModelName identifies the embedding scheme. Vectors are only
	// comparable when produced under the same scheme name.
	ModelName() string

	// Dimensions returns the expected vector dimensions.
	Dimensions() int
}

// Similarity computes the cosine similarity of two embeddings produced by
// the same provider. Vectors coming out of Embed are unit length, so this
// reduces to their dot product. Mismatched or empty vectors score 0.
func Similarity(a, b Embedding) float32 {
	if len(a.Vector) != len(b.Vector) || len(a.Vector) == 0 {
		return 0
	}

	var dot float32
	for i := range a.Vector {
		dot += a.Vector[i] * b.Vector[i]
	}
	return dot
}
