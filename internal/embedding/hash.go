package embedding

import (
	"context"
	"math"
	"strings"
	"unicode"
)

const (
	// DefaultDimensions is the vector width of the hashed bag-of-words scheme.
	DefaultDimensions = 100

	// SchemeName identifies the hashing scheme. Stored vectors are only
	// comparable to query vectors produced under the same scheme, so the
	// version suffix must be bumped whenever the tokenizer or hash changes.
	SchemeName = "fnv1a-bow/v1"
)

// HashProvider generates deterministic hashed bag-of-words embeddings.
// It needs no model server and no network: the same text always maps to
// the same vector, across processes and hosts.
type HashProvider struct {
	dimensions int
}

// HashOption configures a HashProvider.
type HashOption func(*HashProvider)

// WithDimensions sets the vector width.
func WithDimensions(dims int) HashOption {
	return func(p *HashProvider) {
		p.dimensions = dims
	}
}

// NewHashProvider creates a new hashed bag-of-words provider.
func NewHashProvider(opts ...HashOption) *HashProvider {
	p := &HashProvider{
		dimensions: DefaultDimensions,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.dimensions <= 0 {
		p.dimensions = DefaultDimensions
	}
	return p
}

// Embed generates an embedding for the given text. Each token adds weight
// 1/(i+1) to its hash slot, so earlier tokens count more, and the result is
// L2-normalized. Empty or punctuation-only text yields the zero vector.
// The returned error is always nil; it exists to satisfy Provider.
func (p *HashProvider) Embed(ctx context.Context, text string) (Embedding, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Embedding{Vector: make([]float32, p.dimensions)}, nil
	}

	acc := make([]float64, p.dimensions)
	for i, tok := range tokens {
		acc[fnv1a(tok)%uint32(p.dimensions)] += 1 / float64(i+1)
	}

	var sum float64
	for _, v := range acc {
		sum += v * v
	}
	norm := math.Sqrt(sum)

	vec := make([]float32, p.dimensions)
	if norm > 0 {
		for i, v := range acc {
			vec[i] = float32(v / norm)
		}
	}
	return Embedding{Vector: vec}, nil
}

// ModelName returns the versioned scheme name.
func (p *HashProvider) ModelName() string {
	return SchemeName
}

// Dimensions returns the vector width.
func (p *HashProvider) Dimensions() int {
	return p.dimensions
}

// tokenize lowercases text and splits it on anything that is not a letter,
// digit, or underscore.
func tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}

// fnv1a hashes a token with 32-bit FNV-1a. Inlined instead of hash/fnv to
// keep the per-token scan allocation-free.
func fnv1a(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
