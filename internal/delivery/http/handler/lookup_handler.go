package handler

import (
	"errors"
	"net/http"

	"nutritional-planner/internal/delivery/dto"
	"nutritional-planner/internal/service"
	"nutritional-planner/pkg/response"
)

type LookupHandler struct {
	lookupService service.LookupService
}

func NewLookupHandler(lookupService service.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

// GetFoods proxies the external nutrition lookup. An unavailable upstream
// degrades to a placeholder in a successful response; it is never fatal to
// the rest of the flow.
func (h *LookupHandler) GetFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.lookupService.FetchFoods(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrLookupUnavailable) {
			response.Success(w, http.StatusOK, "Nutrition data lookup degraded", &dto.FoodListResponse{
				Available:   false,
				Placeholder: "Nutrition data unavailable",
			})
			return
		}
		response.InternalServerError(w, "Failed to fetch nutrition data")
		return
	}

	response.Success(w, http.StatusOK, "Nutrition data retrieved successfully", &dto.FoodListResponse{
		Available: true,
		Foods:     foods,
	})
}
