package handler

import (
	"net/http"

	"nutritional-planner/internal/catalog"
	"nutritional-planner/internal/delivery/dto"
	"nutritional-planner/internal/export"
	"nutritional-planner/pkg/response"
)

type CatalogHandler struct {
	exporter *export.Exporter
}

func NewCatalogHandler(exporter *export.Exporter) *CatalogHandler {
	return &CatalogHandler{exporter: exporter}
}

func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Catalog retrieved successfully", &dto.CatalogResponse{
		Order:      catalog.CategoryOrder,
		Categories: catalog.Categories,
		DailyTips:  catalog.DailyTips,
	})
}

func (h *CatalogHandler) ExportCatalog(w http.ResponseWriter, r *http.Request) {
	path, err := h.exporter.FoodOptionsTable()
	if err != nil {
		response.InternalServerError(w, "Failed to render food options table")
		return
	}

	response.Success(w, http.StatusOK, "Food options table rendered successfully", &dto.CatalogExportResponse{Path: path})
}
