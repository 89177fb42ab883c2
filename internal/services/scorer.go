package services

import (
	"context"
	"fmt"
)

// Weights are the linear coefficients of the overall score. They sum to 1.0
// in the reference configuration.
type Weights struct {
	Skills         float64
	Tools          float64
	Certifications float64
	Semantic       float64
}

// DefaultWeights returns the reference scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Skills:         0.4,
		Tools:          0.2,
		Certifications: 0.1,
		Semantic:       0.3,
	}
}

type Scorer interface {
	CategoryScore(found, required []string) float64
	SemanticScore(ctx context.Context, resumeText, requirementText string) (float64, error)
	OverallScore(skillPct, toolPct, certPct, semanticPct float64) float64
}

type scorer struct {
	provider SimilarityProvider
	weights  Weights
}

func NewScorer(provider SimilarityProvider, weights Weights) Scorer {
	return &scorer{
		provider: provider,
		weights:  weights,
	}
}

// CategoryScore implements Scorer. The matcher guarantees found is a subset
// of required, so the intersection size equals len(found). An empty required
// list scores 0 rather than dividing by zero.
func (s *scorer) CategoryScore(found, required []string) float64 {
	if len(required) == 0 {
		return 0
	}
	return float64(len(found)) / float64(len(required)) * 100
}

// SemanticScore implements Scorer. It delegates entirely to the similarity
// provider and returns its percentage unchanged.
func (s *scorer) SemanticScore(ctx context.Context, resumeText, requirementText string) (float64, error) {
	score, err := s.provider.Similarity(ctx, resumeText, requirementText)
	if err != nil {
		return 0, fmt.Errorf("failed to compute semantic score: %w", err)
	}
	return score, nil
}

// OverallScore implements Scorer.
func (s *scorer) OverallScore(skillPct, toolPct, certPct, semanticPct float64) float64 {
	return s.weights.Skills*skillPct +
		s.weights.Tools*toolPct +
		s.weights.Certifications*certPct +
		s.weights.Semantic*semanticPct
}
