package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-analyzer/internal/catalog"
	"resume-analyzer/internal/models"
	"resume-analyzer/internal/repositories"
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
	roleCatalog  *catalog.Catalog
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository, roleCatalog *catalog.Catalog) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
		roleCatalog:  roleCatalog,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	response := models.ResultResponse{
		ID:     analysis.ID.String(),
		Status: string(analysis.Status),
	}

	if analysis.Status == models.StatusCompleted {
		response.Result = h.buildReport(analysis)
	}

	if analysis.Status == models.StatusFailed && analysis.ErrorMessage != "" {
		response.ErrorMessage = &analysis.ErrorMessage
	}

	return c.JSON(response)
}

func (h *ResultHandler) buildReport(analysis *models.Analysis) *models.AnalysisReport {
	report := &models.AnalysisReport{
		Role: analysis.Role,
		Scores: models.ScoreSet{
			Skills:         floatValue(analysis.SkillScore),
			Tools:          floatValue(analysis.ToolScore),
			Certifications: floatValue(analysis.CertScore),
			Semantic:       floatValue(analysis.SemanticScore),
			Overall:        floatValue(analysis.OverallScore),
		},
		Skills: models.CategoryReport{
			Found:   analysis.FoundSkills,
			Missing: analysis.MissingSkills,
			Score:   floatValue(analysis.SkillScore),
		},
		Tools: models.CategoryReport{
			Found:   analysis.FoundTools,
			Missing: analysis.MissingTools,
			Score:   floatValue(analysis.ToolScore),
		},
		Certifications: models.CategoryReport{
			Found:   analysis.FoundCerts,
			Missing: analysis.MissingCerts,
			Score:   floatValue(analysis.CertScore),
		},
		Suggestions: analysis.Suggestions,
	}

	if analysis.Verdict != nil {
		report.Verdict = *analysis.Verdict
	}

	// Coverage is derived from the catalog so the entry order always follows
	// the role's skill list
	if profile, err := h.roleCatalog.Role(analysis.Role); err == nil {
		present := make(map[string]struct{}, len(analysis.FoundSkills))
		for _, skill := range analysis.FoundSkills {
			present[skill] = struct{}{}
		}

		for _, skill := range profile.Skills {
			_, ok := present[skill]
			report.SkillCoverage = append(report.SkillCoverage, models.CoverageEntry{
				Skill:   skill,
				Present: ok,
			})
		}
	}

	return report
}

func floatValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
