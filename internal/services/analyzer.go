package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"resume-analyzer/internal/catalog"
	"resume-analyzer/internal/models"
	"resume-analyzer/internal/repositories"
)

// maxSuggestions caps the recommendation list of a report.
const maxSuggestions = 3

type Analyzer interface {
	AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error
}

type analyzer struct {
	analysisRepo repositories.AnalysisRepository
	docRepo      repositories.DocumentRepository
	roleCatalog  *catalog.Catalog
	pdfParser    PDFParserService
	scorer       Scorer
}

func NewAnalyzer(
	analysisRepo repositories.AnalysisRepository,
	docRepo repositories.DocumentRepository,
	roleCatalog *catalog.Catalog,
	pdfParser PDFParserService,
	scorer Scorer,
) Analyzer {
	return &analyzer{
		analysisRepo: analysisRepo,
		docRepo:      docRepo,
		roleCatalog:  roleCatalog,
		pdfParser:    pdfParser,
		scorer:       scorer,
	}
}

// AnalyzeResume runs the full pipeline for one queued analysis. Any failure
// marks the analysis failed with its message; results are stored only when
// every step succeeded.
func (a *analyzer) AnalyzeResume(ctx context.Context, analysisID uuid.UUID) error {
	if err := a.analysisRepo.UpdateStatus(analysisID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting analysis %s\n", analysisID)

	analysis, err := a.analysisRepo.FindByID(analysisID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to get analysis: %w", err)
	}

	profile, err := a.roleCatalog.Role(analysis.Role)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to resolve role: %w", err)
	}

	doc, err := a.docRepo.FindByID(analysis.ResumeDocumentID)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	log.Println("📄 Extracting resume text...")
	resumeText, err := a.pdfParser.ExtractText(doc.FilePath)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, fmt.Sprintf("failed to read resume: %v", err))
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	result, err := a.evaluate(ctx, profile, resumeText)
	if err != nil {
		a.analysisRepo.UpdateError(analysisID, err.Error())
		return fmt.Errorf("failed to evaluate resume: %w", err)
	}

	if err := a.analysisRepo.UpdateResult(analysisID, result); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Analysis %s completed: overall %.2f (%s)\n", analysisID, result.OverallScore, result.Verdict)
	return nil
}

// evaluate scores one resume against one role profile. It is free of
// persistence concerns so the pipeline can be exercised directly in tests.
func (a *analyzer) evaluate(ctx context.Context, profile catalog.RoleProfile, resumeText string) (*repositories.AnalysisResultData, error) {
	foundSkills := FindPresentItems(resumeText, profile.Skills)
	foundTools := FindPresentItems(resumeText, profile.Tools)
	foundCerts := FindPresentItems(resumeText, profile.Certifications)

	skillScore := a.scorer.CategoryScore(foundSkills, profile.Skills)
	toolScore := a.scorer.CategoryScore(foundTools, profile.Tools)
	certScore := a.scorer.CategoryScore(foundCerts, profile.Certifications)

	semanticScore, err := a.scorer.SemanticScore(ctx, resumeText, profile.RequirementText())
	if err != nil {
		return nil, err
	}

	overall := a.scorer.OverallScore(skillScore, toolScore, certScore, semanticScore)

	missingSkills := MissingItems(foundSkills, profile.Skills)
	missingTools := MissingItems(foundTools, profile.Tools)
	missingCerts := MissingItems(foundCerts, profile.Certifications)

	return &repositories.AnalysisResultData{
		SkillScore:    skillScore,
		ToolScore:     toolScore,
		CertScore:     certScore,
		SemanticScore: semanticScore,
		OverallScore:  overall,
		Verdict:       string(ClassifyVerdict(overall)),
		FoundSkills:   foundSkills,
		MissingSkills: missingSkills,
		FoundTools:    foundTools,
		MissingTools:  missingTools,
		FoundCerts:    foundCerts,
		MissingCerts:  missingCerts,
		Suggestions:   TopSuggestions(missingSkills, missingTools, missingCerts, maxSuggestions),
	}, nil
}
