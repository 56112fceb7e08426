package handler

import (
	"net/http"

	"github.com/thrivelog/thrivelog/internal/ctxkeys"
	"github.com/thrivelog/thrivelog/internal/render"
	"github.com/thrivelog/thrivelog/internal/service"
)

type RecommendationHandler struct {
	recommendationService *service.RecommendationService
}

func NewRecommendationHandler(recommendationService *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
	}
}

func (h *RecommendationHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	result, err := h.recommendationService.Recommendations(r.Context(), user.ID)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, result)
}
