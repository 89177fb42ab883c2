package services

import (
	"context"
	"fmt"
	"math"

	"google.golang.org/genai"
)

// EmbeddingProvider produces an embedding vector for a piece of text.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// SimilarityProvider scores the semantic similarity of two texts as a
// percentage in [0,100]. Deterministic for identical inputs given a fixed
// model.
type SimilarityProvider interface {
	Similarity(ctx context.Context, textA, textB string) (float64, error)
}

type GeminiService interface {
	EmbeddingProvider
	SimilarityProvider
}

type geminiService struct {
	client     *genai.Client
	embedModel string
}

// NewGeminiService builds the embedding client once at startup. The client is
// safe for concurrent use and is shared by reference across requests.
func NewGeminiService(apiKey, embedModel string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		embedModel: embedModel,
	}, nil
}

// Embed implements EmbeddingProvider.
func (g *geminiService) Embed(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// Similarity implements SimilarityProvider. It embeds both texts, takes the
// cosine similarity and scales it to a percentage, clamped to [0,100].
func (g *geminiService) Similarity(ctx context.Context, textA, textB string) (float64, error) {
	embA, err := g.Embed(ctx, textA)
	if err != nil {
		return 0, fmt.Errorf("failed to embed first text: %w", err)
	}

	embB, err := g.Embed(ctx, textB)
	if err != nil {
		return 0, fmt.Errorf("failed to embed second text: %w", err)
	}

	return clampPercentage(cosineSimilarity(embA, embB) * 100), nil
}

// cosineSimilarity returns 0 for mismatched or zero-norm vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func clampPercentage(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
