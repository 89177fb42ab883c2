package services

import (
	"reflect"
	"testing"
)

func TestMissingItems(t *testing.T) {
	tests := []struct {
		name     string
		found    []string
		required []string
		want     []string
	}{
		{
			name:     "Nothing found",
			found:    nil,
			required: []string{"A", "B"},
			want:     []string{"A", "B"},
		},
		{
			name:     "Everything found",
			found:    []string{"A", "B"},
			required: []string{"A", "B"},
			want:     nil,
		},
		{
			name:     "Preserves required order",
			found:    []string{"B"},
			required: []string{"A", "B", "C"},
			want:     []string{"A", "C"},
		},
		{
			name:     "Empty required",
			found:    nil,
			required: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingItems(tt.found, tt.required)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingItems() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Found and missing must partition required: no overlap, and interleaving
// them back together reconstructs required in its original order.
func TestMissingItems_PartitionsRequired(t *testing.T) {
	required := []string{"A", "B", "C", "D", "E"}
	found := []string{"B", "D"}

	missing := MissingItems(found, required)

	seen := make(map[string]bool)
	for _, item := range found {
		seen[item] = true
	}
	for _, item := range missing {
		if seen[item] {
			t.Errorf("item %q appears in both found and missing", item)
		}
		seen[item] = true
	}

	if len(found)+len(missing) != len(required) {
		t.Errorf("partition sizes: found %d + missing %d != required %d", len(found), len(missing), len(required))
	}
	for _, item := range required {
		if !seen[item] {
			t.Errorf("item %q lost by the partition", item)
		}
	}
}

func TestTopSuggestions(t *testing.T) {
	tests := []struct {
		name          string
		missingSkills []string
		missingTools  []string
		missingCerts  []string
		want          []string
	}{
		{
			name:          "Skills take priority over tools and certs",
			missingSkills: []string{"React", "Node.js"},
			missingTools:  []string{"Git"},
			missingCerts:  []string{"CEH"},
			want:          []string{"React", "Node.js", "Git"},
		},
		{
			name:          "Truncates to three entries",
			missingSkills: []string{"A", "B", "C", "D"},
			want:          []string{"A", "B", "C"},
		},
		{
			name:         "Falls through to tools and certs",
			missingTools: []string{"Git"},
			missingCerts: []string{"CEH", "CISSP"},
			want:         []string{"Git", "CEH", "CISSP"},
		},
		{
			name: "Sentinel when nothing is missing",
			want: []string{StrongResumeMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopSuggestions(tt.missingSkills, tt.missingTools, tt.missingCerts, 3)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopSuggestions() = %v, want %v", got, tt.want)
			}
			if len(got) > 3 {
				t.Errorf("TopSuggestions() returned %d entries, limit is 3", len(got))
			}
		})
	}
}
