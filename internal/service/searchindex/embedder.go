package searchindex

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// DefaultDimension is the vector size produced by the lexical embedder.
const DefaultDimension = 384

// Embedder turns the text blob of an entity into a vector.
type Embedder interface {
	Name() string
	Embed(ctx context.Context, text string) ([]float32, error)
}

// LexicalEmbedder is a deterministic feature-hashed bag of lowercase tokens.
// Equal texts always produce equal vectors; no model server is needed.
type LexicalEmbedder struct {
	dim int
}

// NewLexicalEmbedder returns a lexical embedder producing dim-sized vectors.
// dim <= 0 selects DefaultDimension.
func NewLexicalEmbedder(dim int) *LexicalEmbedder {
	if dim <= 0 {
		dim = DefaultDimension
	}
	return &LexicalEmbedder{dim: dim}
}

func (e *LexicalEmbedder) Name() string { return "lexical" }

// Embed hashes every token into a bucket with a sign bit and L2-normalises
// the result. Text without tokens yields the zero vector.
func (e *LexicalEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)
	for _, token := range tokenize(text) {
		h := xxhash.Sum64String(token)
		idx := int(h % uint64(e.dim))
		if h&(1<<63) != 0 {
			vec[idx]--
		} else {
			vec[idx]++
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec, nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// FallbackEmbedder tries primary first and uses fallback when it fails.
type FallbackEmbedder struct {
	primary  Embedder
	fallback Embedder
	log      *slog.Logger
}

// NewFallbackEmbedder wraps primary with fallback.
func NewFallbackEmbedder(log *slog.Logger, primary, fallback Embedder) *FallbackEmbedder {
	return &FallbackEmbedder{primary: primary, fallback: fallback, log: log}
}

func (e *FallbackEmbedder) Name() string { return e.primary.Name() + "+" + e.fallback.Name() }

func (e *FallbackEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.primary.Embed(ctx, text)
	if err == nil {
		return vec, nil
	}
	e.log.WarnContext(ctx, "primary embedder failed, using fallback",
		slog.String("embedder", e.primary.Name()),
		slog.String("error", err.Error()),
	)
	return e.fallback.Embed(ctx, text)
}
