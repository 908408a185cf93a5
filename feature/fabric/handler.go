package fabric

import (
	"bytes"
	"fmt"
	"mime/multipart"

	"fabric-index/core/logger"
	"fabric-index/core/match"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for fabric reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the fabric routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/fabric")
	group.Post("/match", h.HandleMatch)
	group.Post("/match/export", h.HandleMatchExport)
}

// HandleMatch reconciles the uploaded sheets and returns a JSON report.
// @Summary Reconcile Fabric Sheets
// @Description Uploads a main sheet and a fabric name index, reconciles them and returns the match summary, mask and a bounded row preview.
// @Tags fabric
// @Accept multipart/form-data
// @Produce json
// @Param main formData file true "Main sheet (.xlsx)"
// @Param index formData file true "Fabric name index sheet (.xlsx)"
// @Success 200 {object} fabric.MatchReport "Match Report"
// @Failure 400 {object} map[string]string "Bad Upload"
// @Router /fabric/match [post]
func (h *Handler) HandleMatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.runFromRequest(c)
	if err != nil {
		l.Warn("Match request rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(h.service.Report(result))
}

// HandleMatchExport reconciles the uploaded sheets and returns the annotated
// xlsx artifact.
// @Summary Export Annotated Sheet
// @Description Uploads a main sheet and a fabric name index, reconciles them and returns the annotated spreadsheet with matched cells highlighted.
// @Tags fabric
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param main formData file true "Main sheet (.xlsx)"
// @Param index formData file true "Fabric name index sheet (.xlsx)"
// @Success 200 {file} binary "Annotated Artifact"
// @Failure 400 {object} map[string]string "Bad Upload"
// @Failure 500 {object} map[string]string "Serialization Failure"
// @Router /fabric/match/export [post]
func (h *Handler) HandleMatchExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.runFromRequest(c)
	if err != nil {
		l.Warn("Export request rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var buf bytes.Buffer
	if err := h.service.Export(&buf, result); err != nil {
		l.Error("Artifact serialization failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="result.xlsx"`)
	return c.Send(buf.Bytes())
}

// runFromRequest pulls both uploads out of the multipart form and runs the
// pipeline. All failures here are client errors: missing parts, unreadable
// files, or sheets that violate the minimum-column contract.
func (h *Handler) runFromRequest(c *fiber.Ctx) (*match.Result, error) {
	mainFile, err := openFormFile(c, "main")
	if err != nil {
		return nil, err
	}
	defer mainFile.Close()

	indexFile, err := openFormFile(c, "index")
	if err != nil {
		return nil, err
	}
	defer indexFile.Close()

	return h.service.Run(mainFile, indexFile)
}

func openFormFile(c *fiber.Ctx, field string) (multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing upload field %q: %w", field, err)
	}
	return fh.Open()
}
