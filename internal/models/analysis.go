package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// StringList stores an ordered list of strings as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(data), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported string list source type %T", src)
	}

	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("failed to unmarshal string list: %w", err)
	}
	return nil
}

type Analysis struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Role             string         `gorm:"type:text;not null" json:"role"`
	ResumeDocumentID uuid.UUID      `gorm:"type:uuid;not null" json:"resume_document_id"`
	Status           AnalysisStatus `gorm:"not null;default:'queued'" json:"status"`

	SkillScore    *float64 `gorm:"type:decimal(5,2)" json:"skill_score,omitempty"`
	ToolScore     *float64 `gorm:"type:decimal(5,2)" json:"tool_score,omitempty"`
	CertScore     *float64 `gorm:"type:decimal(5,2)" json:"cert_score,omitempty"`
	SemanticScore *float64 `gorm:"type:decimal(5,2)" json:"semantic_score,omitempty"`
	OverallScore  *float64 `gorm:"type:decimal(5,2)" json:"overall_score,omitempty"`
	Verdict       *string  `gorm:"type:text" json:"verdict,omitempty"`

	FoundSkills   StringList `gorm:"type:text" json:"found_skills,omitempty"`
	MissingSkills StringList `gorm:"type:text" json:"missing_skills,omitempty"`
	FoundTools    StringList `gorm:"type:text" json:"found_tools,omitempty"`
	MissingTools  StringList `gorm:"type:text" json:"missing_tools,omitempty"`
	FoundCerts    StringList `gorm:"type:text" json:"found_certs,omitempty"`
	MissingCerts  StringList `gorm:"type:text" json:"missing_certs,omitempty"`
	Suggestions   StringList `gorm:"type:text" json:"suggestions,omitempty"`

	ErrorMessage string    `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
