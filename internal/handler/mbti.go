package handler

import (
	"net/http"

	"github.com/thrivelog/thrivelog/internal/ctxkeys"
	"github.com/thrivelog/thrivelog/internal/mbti"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/render"
	"github.com/thrivelog/thrivelog/internal/service"
)

type MBTIHandler struct {
	mbtiService           *service.MBTIService
	recommendationService *service.RecommendationService
}

func NewMBTIHandler(mbtiService *service.MBTIService, recommendationService *service.RecommendationService) *MBTIHandler {
	return &MBTIHandler{
		mbtiService:           mbtiService,
		recommendationService: recommendationService,
	}
}

func (h *MBTIHandler) Questions(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, map[string]any{
		"questions": h.mbtiService.Questions(),
		"total":     mbti.QuestionCount,
	})
}

type submitRequest struct {
	Answers map[string]string `json:"answers"`
}

type submitResponse struct {
	Profile *model.MBTIProfile `json:"profile"`
	Result  mbti.Result        `json:"result"`
}

func (h *MBTIHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req submitRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	profile, result, err := h.mbtiService.Submit(user.ID, req.Answers)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, submitResponse{Profile: profile, Result: result})
}

func (h *MBTIHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	profile, err := h.mbtiService.Profile(user.ID)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, profile)
}

type insightsRequest struct {
	MBTIType string `json:"mbtiType"`
}

func (h *MBTIHandler) Insights(w http.ResponseWriter, r *http.Request) {
	var req insightsRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	result, err := h.recommendationService.Insights(r.Context(), req.MBTIType)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, result)
}
