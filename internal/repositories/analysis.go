package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resume-analyzer/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindByID(id uuid.UUID) (*models.Analysis, error)
	UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error
	UpdateResult(id uuid.UUID, result *AnalysisResultData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindQueued(limit int) ([]models.Analysis, error)
}

// AnalysisResultData carries the complete outcome of one finished analysis.
// Partial results are never stored; a failed run goes through UpdateError.
type AnalysisResultData struct {
	SkillScore    float64
	ToolScore     float64
	CertScore     float64
	SemanticScore float64
	OverallScore  float64
	Verdict       string
	FoundSkills   []string
	MissingSkills []string
	FoundTools    []string
	MissingTools  []string
	FoundCerts    []string
	MissingCerts  []string
	Suggestions   []string
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(analysis *models.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

func (r *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.Where("id = ?", id).First(&analysis).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis not found")
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &analysis, nil
}

func (r *analysisRepository) UpdateStatus(id uuid.UUID, status models.AnalysisStatus) error {
	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis not found")
	}

	return nil
}

func (r *analysisRepository) UpdateResult(id uuid.UUID, data *AnalysisResultData) error {
	updates := map[string]interface{}{
		"status":         models.StatusCompleted,
		"skill_score":    data.SkillScore,
		"tool_score":     data.ToolScore,
		"cert_score":     data.CertScore,
		"semantic_score": data.SemanticScore,
		"overall_score":  data.OverallScore,
		"verdict":        data.Verdict,
		"found_skills":   models.StringList(data.FoundSkills),
		"missing_skills": models.StringList(data.MissingSkills),
		"found_tools":    models.StringList(data.FoundTools),
		"missing_tools":  models.StringList(data.MissingTools),
		"found_certs":    models.StringList(data.FoundCerts),
		"missing_certs":  models.StringList(data.MissingCerts),
		"suggestions":    models.StringList(data.Suggestions),
		"updated_at":     time.Now(),
	}

	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis not found")
	}

	return nil
}

func (r *analysisRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Analysis{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("analysis not found")
	}

	return nil
}

func (r *analysisRepository) FindQueued(limit int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find queued analyses: %w", err)
	}

	return analyses, nil
}
