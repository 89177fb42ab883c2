package services

import (
	"reflect"
	"testing"
)

func TestFindPresentItems_ExactWordBoundary(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		candidates []string
		want       []string
	}{
		{
			name:       "Whole words match",
			text:       "experienced with html and css layouts",
			candidates: []string{"HTML", "CSS", "JavaScript"},
			want:       []string{"HTML", "CSS"},
		},
		{
			name:       "Substring of a longer token does not match",
			text:       "javascript developer with frontend focus",
			candidates: []string{"Java"},
			want:       nil,
		},
		{
			name:       "Special characters are literal",
			text:       "built services with node.js and express",
			candidates: []string{"Node.js"},
			want:       []string{"Node.js"},
		},
		{
			name:       "Multi-word phrase matches as a whole",
			text:       "applied machine learning to fraud detection",
			candidates: []string{"Machine Learning"},
			want:       []string{"Machine Learning"},
		},
		{
			name:       "Case-insensitive",
			text:       "Expert in PYTHON scripting",
			candidates: []string{"Python"},
			want:       []string{"Python"},
		},
		{
			name:       "Empty candidates",
			text:       "anything at all",
			candidates: nil,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPresentItems(tt.text, tt.candidates)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindPresentItems() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindPresentItems_FuzzyFallback(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		candidates []string
		want       []string
	}{
		{
			name:       "Close misspelling counts as present",
			text:       "deployed workloads on kubernetees clusters",
			candidates: []string{"Kubernetes"},
			want:       []string{"Kubernetes"},
		},
		{
			name:       "Distant token is rejected",
			text:       "managed kitchen inventory",
			candidates: []string{"Kubernetes"},
			want:       nil,
		},
		{
			name:       "Multi-word candidates never fuzzy-match single tokens",
			text:       "strong machine learnings background",
			candidates: []string{"Machine Learning"},
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPresentItems(tt.text, tt.candidates)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindPresentItems() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindPresentItems_PreservesCandidateOrder(t *testing.T) {
	text := "css before html in this sentence"
	candidates := []string{"HTML", "CSS"}

	got := FindPresentItems(text, candidates)
	want := []string{"HTML", "CSS"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindPresentItems() = %v, want candidate order %v", got, want)
	}
}

func TestFindPresentItems_Idempotent(t *testing.T) {
	text := "python pandas and a kubernetees cluster"
	candidates := []string{"Python", "Pandas", "Kubernetes", "Terraform"}

	first := FindPresentItems(text, candidates)
	second := FindPresentItems(text, candidates)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("FindPresentItems() not idempotent: first %v, second %v", first, second)
	}
}
