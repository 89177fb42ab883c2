package services

import (
	"context"
	"math"
	"reflect"
	"testing"

	"resume-analyzer/internal/catalog"
)

func newTestAnalyzer(semantic float64) *analyzer {
	return &analyzer{
		scorer: NewScorer(&stubSimilarity{score: semantic}, DefaultWeights()),
	}
}

func TestEvaluate_WebDeveloperScenario(t *testing.T) {
	roleCatalog := catalog.New(catalog.DefaultRoles())
	profile, err := roleCatalog.Role("Web Developer")
	if err != nil {
		t.Fatalf("failed to load Web Developer profile: %v", err)
	}

	a := newTestAnalyzer(50)

	// Resume mentions exactly two required skills and nothing else
	result, err := a.evaluate(context.Background(), profile, "html and css experience")
	if err != nil {
		t.Fatalf("evaluate() failed: %v", err)
	}

	if math.Abs(result.SkillScore-2.0/7.0*100) > 0.001 {
		t.Errorf("SkillScore = %v, want ~28.57", result.SkillScore)
	}
	if result.ToolScore != 0 {
		t.Errorf("ToolScore = %v, want 0", result.ToolScore)
	}
	if result.CertScore != 0 {
		t.Errorf("CertScore = %v, want 0", result.CertScore)
	}
	if result.SemanticScore != 50 {
		t.Errorf("SemanticScore = %v, want 50", result.SemanticScore)
	}
	if math.Abs(result.OverallScore-26.428571) > 0.001 {
		t.Errorf("OverallScore = %v, want ~26.43", result.OverallScore)
	}
	if result.Verdict != string(VerdictWeak) {
		t.Errorf("Verdict = %v, want %v", result.Verdict, VerdictWeak)
	}

	if !reflect.DeepEqual(result.FoundSkills, []string{"HTML", "CSS"}) {
		t.Errorf("FoundSkills = %v, want [HTML CSS]", result.FoundSkills)
	}
	if len(result.MissingSkills) != 5 {
		t.Errorf("MissingSkills has %d entries, want 5", len(result.MissingSkills))
	}

	wantSuggestions := []string{"JavaScript", "React", "Node.js"}
	if !reflect.DeepEqual(result.Suggestions, wantSuggestions) {
		t.Errorf("Suggestions = %v, want %v", result.Suggestions, wantSuggestions)
	}
}

func TestEvaluate_FullMatchIsStrong(t *testing.T) {
	profile := catalog.RoleProfile{
		Name:   "Minimal",
		Skills: []string{"Go"},
		Tools:  []string{"Git"},
	}

	a := newTestAnalyzer(100)

	result, err := a.evaluate(context.Background(), profile, "go services managed with git")
	if err != nil {
		t.Fatalf("evaluate() failed: %v", err)
	}

	if result.SkillScore != 100 || result.ToolScore != 100 {
		t.Errorf("scores = %v/%v, want 100/100", result.SkillScore, result.ToolScore)
	}
	if result.Verdict != string(VerdictExcellent) {
		t.Errorf("Verdict = %v, want %v", result.Verdict, VerdictExcellent)
	}
	if !reflect.DeepEqual(result.Suggestions, []string{StrongResumeMessage}) {
		t.Errorf("Suggestions = %v, want the strong-resume sentinel", result.Suggestions)
	}
}

func TestEvaluate_EmptyCategoryNeverPanics(t *testing.T) {
	profile := catalog.RoleProfile{
		Name:   "Sparse",
		Skills: []string{"Go"},
		// No tools, no certifications
	}

	a := newTestAnalyzer(0)

	result, err := a.evaluate(context.Background(), profile, "nothing relevant here")
	if err != nil {
		t.Fatalf("evaluate() failed: %v", err)
	}

	if result.ToolScore != 0 || result.CertScore != 0 {
		t.Errorf("empty categories scored %v/%v, want 0/0", result.ToolScore, result.CertScore)
	}
	if len(result.MissingTools) != 0 || len(result.MissingCerts) != 0 {
		t.Errorf("empty categories produced missing items: %v / %v", result.MissingTools, result.MissingCerts)
	}
}

func TestEvaluate_SemanticAloneCanLiftVerdict(t *testing.T) {
	profile := catalog.RoleProfile{
		Name:   "Minimal",
		Skills: []string{"Go"},
	}

	a := newTestAnalyzer(100)

	// Skills 100 * 0.4 + semantic 100 * 0.3 = 70 -> Moderate
	result, err := a.evaluate(context.Background(), profile, "go expert")
	if err != nil {
		t.Fatalf("evaluate() failed: %v", err)
	}

	if result.Verdict != string(VerdictModerate) {
		t.Errorf("Verdict = %v (overall %v), want %v", result.Verdict, result.OverallScore, VerdictModerate)
	}
}
