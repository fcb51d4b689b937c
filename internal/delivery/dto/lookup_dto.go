package dto

import "nutritional-planner/internal/service"

// FoodListResponse is the external nutrition lookup result. When the
// upstream source is unreachable, Available is false and Placeholder holds
// the user-visible message; the request still succeeds.
type FoodListResponse struct {
	Available   bool                 `json:"available"`
	Foods       []service.FoodRecord `json:"foods,omitempty"`
	Placeholder string               `json:"placeholder,omitempty"`
}

// CatalogResponse exposes the static meal catalog
type CatalogResponse struct {
	Order      []string            `json:"order"`
	Categories map[string][]string `json:"categories"`
	DailyTips  []string            `json:"daily_tips"`
}

// CatalogExportResponse carries the rendered food-options table path
type CatalogExportResponse struct {
	Path string `json:"path"`
}
