package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"jrphotography/internal/errors"
	"jrphotography/internal/service"
)

// PackageHandler handles service package endpoints.
type PackageHandler struct {
	packageService service.PackageService
}

// NewPackageHandler creates a new package handler.
func NewPackageHandler(packageService service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// FeatureRequest is one feature line of a package payload.
type FeatureRequest struct {
	Text          string `json:"text" validate:"required"`
	Strikethrough bool   `json:"strikethrough"`
}

// PackageRequest represents a package create/update payload.
type PackageRequest struct {
	Name        string           `json:"name" validate:"required"`
	Price       string           `json:"price" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Features    []FeatureRequest `json:"features"`
}

func (r *PackageRequest) toInput() (service.PackageInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return service.PackageInput{}, err
	}
	features := make([]service.FeatureInput, 0, len(r.Features))
	for _, f := range r.Features {
		features = append(features, service.FeatureInput{
			Text:          f.Text,
			Strikethrough: f.Strikethrough,
		})
	}
	return service.PackageInput{
		Name:        r.Name,
		Price:       price,
		Description: r.Description,
		Features:    features,
	}, nil
}

// ListPackages godoc
// @Summary List all service packages
// @Tags packages
// @Produce json
// @Success 200 {array} model.Package
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages [get]
func (h *PackageHandler) ListPackages(c echo.Context) error {
	pkgs, err := h.packageService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, pkgs)
}

// CreatePackage godoc
// @Summary Create a service package (admin)
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PackageRequest true "Package data"
// @Success 201 {object} model.Package
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages [post]
func (h *PackageHandler) CreatePackage(c echo.Context) error {
	var req PackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_PRICE",
		})
	}

	pkg, err := h.packageService.Create(c.Request().Context(), input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, pkg)
}

// UpdatePackage godoc
// @Summary Update a service package (admin)
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Param request body PackageRequest true "Package data"
// @Success 200 {object} model.Package
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages/{id} [put]
func (h *PackageHandler) UpdatePackage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid package id",
			Code:  "INVALID_UUID",
		})
	}

	var req PackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input, err := req.toInput()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_PRICE",
		})
	}

	pkg, err := h.packageService.Update(c.Request().Context(), id, input)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, pkg)
}

// DeletePackage godoc
// @Summary Delete a service package (admin)
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid package id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.packageService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
