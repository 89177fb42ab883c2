package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resume-analyzer/internal/catalog"
	"resume-analyzer/internal/models"
	"resume-analyzer/internal/repositories"
	"resume-analyzer/internal/services"
)

// suggestedRoleLimit caps how many best-fit roles the suggest endpoint returns.
const suggestedRoleLimit = 3

type RolesHandler struct {
	roleCatalog *catalog.Catalog
	docRepo     repositories.DocumentRepository
	pdfParser   services.PDFParserService
	roleIndex   services.RoleIndex
}

func NewRolesHandler(
	roleCatalog *catalog.Catalog,
	docRepo repositories.DocumentRepository,
	pdfParser services.PDFParserService,
	roleIndex services.RoleIndex,
) *RolesHandler {
	return &RolesHandler{
		roleCatalog: roleCatalog,
		docRepo:     docRepo,
		pdfParser:   pdfParser,
		roleIndex:   roleIndex,
	}
}

// HandleListRoles handles GET /roles
func (h *RolesHandler) HandleListRoles(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"roles": h.roleCatalog.Names(),
	})
}

// HandleSuggestRoles handles GET /roles/suggest/:document_id, ranking catalog
// roles against the uploaded resume by vector similarity.
func (h *RolesHandler) HandleSuggestRoles(c *fiber.Ctx) error {
	docID, err := uuid.Parse(c.Params("document_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID format",
		})
	}

	doc, err := h.docRepo.FindByID(docID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}

	resumeText, err := h.pdfParser.ExtractText(doc.FilePath)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Failed to read resume: " + err.Error(),
		})
	}

	suggestions, err := h.roleIndex.SuggestRoles(c.Context(), resumeText, suggestedRoleLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to rank roles",
		})
	}

	return c.JSON(models.RoleSuggestResponse{
		DocumentID:  doc.ID.String(),
		Suggestions: suggestions,
	})
}
