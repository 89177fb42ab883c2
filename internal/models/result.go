package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
}

type AnalyzeRequest struct {
	Role             string `json:"role" validate:"required"`
	ResumeDocumentID string `json:"resume_document_id" validate:"required,uuid"`
}

type AnalyzeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ScoreSet holds the per-category percentages and the weighted overall score,
// all in [0,100].
type ScoreSet struct {
	Skills         float64 `json:"skills"`
	Tools          float64 `json:"tools"`
	Certifications float64 `json:"certifications"`
	Semantic       float64 `json:"semantic"`
	Overall        float64 `json:"overall"`
}

// CategoryReport lists which required items were found and which are missing
// for one category, with the category match percentage.
type CategoryReport struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
	Score   float64  `json:"score"`
}

// CoverageEntry flags a single required skill as present or absent, the data
// behind a coverage/radar rendering on the client side.
type CoverageEntry struct {
	Skill   string `json:"skill"`
	Present bool   `json:"present"`
}

type AnalysisReport struct {
	Role           string          `json:"role"`
	Scores         ScoreSet        `json:"scores"`
	Skills         CategoryReport  `json:"skills"`
	Tools          CategoryReport  `json:"tools"`
	Certifications CategoryReport  `json:"certifications"`
	Suggestions    []string        `json:"suggestions"`
	Verdict        string          `json:"verdict"`
	SkillCoverage  []CoverageEntry `json:"skill_coverage"`
}

type ResultResponse struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Result       *AnalysisReport `json:"result,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
}

type RoleSuggestion struct {
	Role  string  `json:"role"`
	Score float64 `json:"score"`
}

type RoleSuggestResponse struct {
	DocumentID  string           `json:"document_id"`
	Suggestions []RoleSuggestion `json:"suggestions"`
}
