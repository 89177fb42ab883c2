package services

import (
	"context"
	"errors"
	"math"
	"testing"
)

// stubSimilarity returns a fixed similarity percentage.
type stubSimilarity struct {
	score float64
	err   error
}

func (s *stubSimilarity) Similarity(ctx context.Context, textA, textB string) (float64, error) {
	return s.score, s.err
}

func TestCategoryScore(t *testing.T) {
	scorer := NewScorer(&stubSimilarity{}, DefaultWeights())

	tests := []struct {
		name     string
		found    []string
		required []string
		want     float64
	}{
		{
			name:     "Full match scores 100",
			found:    []string{"A", "B", "C"},
			required: []string{"A", "B", "C"},
			want:     100,
		},
		{
			name:     "No matches scores 0",
			found:    nil,
			required: []string{"A", "B"},
			want:     0,
		},
		{
			name:     "Partial match",
			found:    []string{"A"},
			required: []string{"A", "B", "C", "D"},
			want:     25,
		},
		{
			name:     "Empty required guards division by zero",
			found:    nil,
			required: nil,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.CategoryScore(tt.found, tt.required)
			if got != tt.want {
				t.Errorf("CategoryScore() = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("CategoryScore() = %v, outside [0,100]", got)
			}
		})
	}
}

func TestOverallScore_DefaultWeights(t *testing.T) {
	scorer := NewScorer(&stubSimilarity{}, DefaultWeights())

	// Reference scenario: skills 2/7, tools 0, certs 0, semantic 50
	skillPct := 2.0 / 7.0 * 100

	got := scorer.OverallScore(skillPct, 0, 0, 50)
	want := 0.4*skillPct + 0.3*50

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("OverallScore() = %v, want %v", got, want)
	}
	if math.Abs(got-26.428571) > 0.001 {
		t.Errorf("OverallScore() = %v, want ~26.43", got)
	}
}

func TestOverallScore_CustomWeights(t *testing.T) {
	scorer := NewScorer(&stubSimilarity{}, Weights{Skills: 1})

	if got := scorer.OverallScore(80, 10, 10, 10); got != 80 {
		t.Errorf("OverallScore() with skills-only weights = %v, want 80", got)
	}
}

func TestSemanticScore_DelegatesToProvider(t *testing.T) {
	scorer := NewScorer(&stubSimilarity{score: 72.5}, DefaultWeights())

	got, err := scorer.SemanticScore(context.Background(), "resume text", "requirement text")
	if err != nil {
		t.Fatalf("SemanticScore() failed: %v", err)
	}
	if got != 72.5 {
		t.Errorf("SemanticScore() = %v, want 72.5", got)
	}
}

func TestSemanticScore_ProviderError(t *testing.T) {
	scorer := NewScorer(&stubSimilarity{err: errors.New("model unavailable")}, DefaultWeights())

	if _, err := scorer.SemanticScore(context.Background(), "a", "b"); err == nil {
		t.Error("SemanticScore() expected error but got none")
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{
			name: "Identical vectors",
			a:    []float32{1, 2, 3},
			b:    []float32{1, 2, 3},
			want: 1,
		},
		{
			name: "Orthogonal vectors",
			a:    []float32{1, 0},
			b:    []float32{0, 1},
			want: 0,
		},
		{
			name: "Opposite vectors",
			a:    []float32{1, 0},
			b:    []float32{-1, 0},
			want: -1,
		},
		{
			name: "Zero vector guards",
			a:    []float32{0, 0},
			b:    []float32{1, 1},
			want: 0,
		},
		{
			name: "Mismatched lengths",
			a:    []float32{1, 2},
			b:    []float32{1},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampPercentage(t *testing.T) {
	if got := clampPercentage(-5); got != 0 {
		t.Errorf("clampPercentage(-5) = %v, want 0", got)
	}
	if got := clampPercentage(150); got != 100 {
		t.Errorf("clampPercentage(150) = %v, want 100", got)
	}
	if got := clampPercentage(42.5); got != 42.5 {
		t.Errorf("clampPercentage(42.5) = %v, want 42.5", got)
	}
}
