package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jrphotography/internal/errors"
	"jrphotography/internal/service"
)

// PortfolioHandler handles gallery endpoints.
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler.
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// ListPortfolio godoc
// @Summary List all gallery entries
// @Tags portfolio
// @Produce json
// @Success 200 {array} model.PortfolioItem
// @Failure 500 {object} errors.ErrorResponse
// @Router /portfolio [get]
func (h *PortfolioHandler) ListPortfolio(c echo.Context) error {
	items, err := h.portfolioService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, items)
}

// FeaturedPortfolio godoc
// @Summary List the newest gallery entries for the landing page
// @Tags portfolio
// @Produce json
// @Success 200 {array} model.PortfolioItem
// @Failure 500 {object} errors.ErrorResponse
// @Router /portfolio/featured [get]
func (h *PortfolioHandler) FeaturedPortfolio(c echo.Context) error {
	items, err := h.portfolioService.Featured(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, items)
}

// UploadPortfolio godoc
// @Summary Upload a gallery image (admin)
// @Tags portfolio
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param category formData string true "Category (wedding, portrait, event, commercial)"
// @Param alt_text formData string true "Alt text"
// @Param image formData file true "Image file"
// @Success 201 {object} model.PortfolioItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/portfolio [post]
func (h *PortfolioHandler) UploadPortfolio(c echo.Context) error {
	title := c.FormValue("title")
	category := c.FormValue("category")
	altText := c.FormValue("alt_text")
	if title == "" || category == "" || altText == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "title, category and alt_text are required",
			Code:  "MISSING_FIELDS",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "image file is required",
			Code:  "MISSING_IMAGE",
		})
	}

	item, err := h.portfolioService.Upload(c.Request().Context(), service.UploadInput{
		Title:    title,
		Category: category,
		AltText:  altText,
		File:     file,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, item)
}

// DeletePortfolio godoc
// @Summary Delete a gallery entry and its image (admin)
// @Tags portfolio
// @Produce json
// @Security BearerAuth
// @Param id path string true "Portfolio item ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/portfolio/{id} [delete]
func (h *PortfolioHandler) DeletePortfolio(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid portfolio item id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.portfolioService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
