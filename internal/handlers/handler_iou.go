package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cbfacademy/iou_api/internal/apperrors"
	portssvc "github.com/cbfacademy/iou_api/internal/core/ports/services"
	"github.com/cbfacademy/iou_api/internal/dto"
	"github.com/cbfacademy/iou_api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const iouNotFoundMessage = "IOU Not Found"

// iouHandler handles HTTP requests related to IOUs.
type iouHandler struct {
	iouService portssvc.IOUSvcFacade
}

// newIOUHandler creates a new iouHandler.
func newIOUHandler(is portssvc.IOUSvcFacade) *iouHandler {
	return &iouHandler{
		iouService: is,
	}
}

// RegisterIOURoutes registers all IOU routes under rg.
func RegisterIOURoutes(rg *gin.RouterGroup, iouService portssvc.IOUSvcFacade) {
	h := newIOUHandler(iouService)

	ious := rg.Group("/ious")
	{
		ious.GET("", h.listIOUs)
		ious.GET("/high", h.listHighValueIOUs)
		ious.GET("/low", h.listLowValueIOUs)
		ious.GET("/:id", h.getIOU)
		ious.POST("", h.createIOU)
		ious.PUT("/:id", h.updateIOU)
		ious.DELETE("/:id", h.deleteIOU)
	}
}

// listIOUs godoc
// @Summary List IOUs
// @Description Lists all IOUs, or those of one borrower or lender (case-insensitive). The borrower filter wins when both are given.
// @Tags ious
// @Produce  json
// @Param   borrower query string false "Borrower name"
// @Param   lender   query string false "Lender name"
// @Success 200 {array} dto.IOUResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ious [get]
func (h *iouHandler) listIOUs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListIOUsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for list IOUs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	var (
		listErr error
		result  = []dto.IOUResponse{}
	)
	switch {
	case strings.TrimSpace(params.Borrower) != "":
		logger.Info("Listing IOUs by borrower", slog.String("borrower", params.Borrower))
		ious, err := h.iouService.ListIOUsByBorrower(ctx, params.Borrower)
		listErr, result = err, dto.ToListIOUResponse(ious)
	case strings.TrimSpace(params.Lender) != "":
		logger.Info("Listing IOUs by lender", slog.String("lender", params.Lender))
		ious, err := h.iouService.ListIOUsByLender(ctx, params.Lender)
		listErr, result = err, dto.ToListIOUResponse(ious)
	default:
		ious, err := h.iouService.ListIOUs(ctx)
		listErr, result = err, dto.ToListIOUResponse(ious)
	}

	if listErr != nil {
		logger.Error("Failed to list IOUs from service", slog.String("error", listErr.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": listErr.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// listHighValueIOUs godoc
// @Summary List high value IOUs
// @Description Lists IOUs whose amount is strictly above the average amount, newest first
// @Tags ious
// @Produce  json
// @Success 200 {array} dto.IOUResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ious/high [get]
func (h *iouHandler) listHighValueIOUs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ious, err := h.iouService.ListHighValueIOUs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list high value IOUs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToListIOUResponse(ious))
}

// listLowValueIOUs godoc
// @Summary List low value IOUs
// @Description Lists IOUs whose amount is at or below the average amount, newest first
// @Tags ious
// @Produce  json
// @Success 200 {array} dto.IOUResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ious/low [get]
func (h *iouHandler) listLowValueIOUs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ious, err := h.iouService.ListLowValueIOUs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list low value IOUs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToListIOUResponse(ious))
}

// getIOU godoc
// @Summary Get an IOU by ID
// @Tags ious
// @Produce  json
// @Param   id path string true "IOU ID (UUID)"
// @Success 200 {object} dto.IOUResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed ID"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ious/{id} [get]
func (h *iouHandler) getIOU(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIOUID(c, logger)
	if !ok {
		return
	}

	iou, err := h.iouService.GetIOUByID(c.Request.Context(), id)
	if err != nil {
		respondWithServiceError(c, logger, "Failed to get IOU", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToIOUResponse(iou))
}

// createIOU godoc
// @Summary Create an IOU
// @Description Creates an IOU. The ID is always server-assigned; amount defaults to 0 and createdAt to now.
// @Tags ious
// @Accept  json
// @Produce  json
// @Param   iou body dto.CreateIOURequest true "IOU details"
// @Success 201 {object} dto.IOUResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse
// @Router /ious [post]
func (h *iouHandler) createIOU(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateIOURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create IOU", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.iouService.CreateIOU(c.Request.Context(), req.ToDomain())
	if err != nil {
		logger.Error("Failed to create IOU in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("IOU created successfully", slog.String("iou_id", created.ID.String()))
	c.JSON(http.StatusCreated, dto.ToIOUResponse(created))
}

// updateIOU godoc
// @Summary Update an IOU
// @Description Replaces borrower, lender and amount of an IOU. ID and createdAt never change.
// @Tags ious
// @Accept  json
// @Produce  json
// @Param   id  path string true "IOU ID (UUID)"
// @Param   iou body dto.UpdateIOURequest true "New IOU details"
// @Success 200 {object} dto.IOUResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ious/{id} [put]
func (h *iouHandler) updateIOU(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIOUID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateIOURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update IOU", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.iouService.UpdateIOU(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		respondWithServiceError(c, logger, "Failed to update IOU", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToIOUResponse(updated))
}

// deleteIOU godoc
// @Summary Delete an IOU
// @Tags ious
// @Param   id path string true "IOU ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Malformed ID"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ious/{id} [delete]
func (h *iouHandler) deleteIOU(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIOUID(c, logger)
	if !ok {
		return
	}

	if err := h.iouService.DeleteIOU(c.Request.Context(), id); err != nil {
		respondWithServiceError(c, logger, "Failed to delete IOU", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseIOUID(c *gin.Context, logger *slog.Logger) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Malformed IOU ID", slog.String("iou_id", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid IOU ID: " + raw})
		return uuid.Nil, false
	}
	return id, true
}

// respondWithServiceError maps ErrNotFound to 404 and everything else to 500
// carrying the error message.
func respondWithServiceError(c *gin.Context, logger *slog.Logger, msg string, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": iouNotFoundMessage})
		return
	}
	logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
