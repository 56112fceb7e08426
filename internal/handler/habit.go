package handler

import (
	"net/http"

	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/ctxkeys"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/render"
	"github.com/thrivelog/thrivelog/internal/service"
)

type HabitHandler struct {
	habitService *service.HabitService
}

func NewHabitHandler(habitService *service.HabitService) *HabitHandler {
	return &HabitHandler{
		habitService: habitService,
	}
}

func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	active, err := queryBool(r, "isActive")
	if err != nil {
		render.Error(w, r, err)
		return
	}

	habits, err := h.habitService.Habits(user.ID, active)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]any{"habits": habits})
}

func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var in model.NewHabit
	err := decodeJSON(w, r, &in)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	habit, err := h.habitService.Create(user.ID, in)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, habit)
}

func (h *HabitHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	habit, err := h.habitService.ByID(user.ID, r.PathValue("id"))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, habit)
}

type trackRequest struct {
	Date      string `json:"date"`
	Completed *bool  `json:"completed"`
}

func (h *HabitHandler) Track(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req trackRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		render.Error(w, r, err)
		return
	}
	if req.Completed == nil {
		render.Error(w, r, apperr.New(apperr.ErrInvalidArgument, "completed is required"))
		return
	}

	habit, err := h.habitService.Track(user.ID, r.PathValue("id"), req.Date, *req.Completed)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, habit)
}

func (h *HabitHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.habitService.Deactivate(user.ID, r.PathValue("id"))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
