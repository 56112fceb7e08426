package handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thrivelog/thrivelog/internal/apperr"
	"github.com/thrivelog/thrivelog/internal/ctxkeys"
	"github.com/thrivelog/thrivelog/internal/model"
	"github.com/thrivelog/thrivelog/internal/render"
	"github.com/thrivelog/thrivelog/internal/service"
)

type JournalHandler struct {
	journalService *service.JournalService
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
	}
}

type createEntryRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Mood      string   `json:"mood"`
	Tags      []string `json:"tags"`
	IsPrivate bool     `json:"is_private"`
	Date      string   `json:"date"`
}

func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createEntryRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	in := model.NewJournalEntry{
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		Tags:      req.Tags,
		IsPrivate: req.IsPrivate,
	}
	if req.Date != "" {
		in.Date, err = service.ParseEntryDate(req.Date)
		if err != nil {
			render.Error(w, r, err)
			return
		}
	}

	entry, err := h.journalService.Create(r.Context(), user.ID, in)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, entry)
}

// Import accepts a Markdown document, either as the raw body or as the
// "content" field of a JSON object.
func (h *JournalHandler) Import(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var source []byte
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req struct {
			Content string `json:"content"`
		}
		err := decodeJSON(w, r, &req)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		source = []byte(req.Content)
	} else {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			render.Error(w, r, apperr.New(apperr.ErrInvalidArgument, "request body too large"))
			return
		}
		source = body
	}

	entry, err := h.journalService.Import(r.Context(), user.ID, source)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusCreated, entry)
}

func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	limit, err := queryInt(r, "limit", service.DefaultJournalLimit)
	if err != nil {
		render.Error(w, r, err)
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		render.Error(w, r, err)
		return
	}
	isPrivate, err := queryBool(r, "isPrivate")
	if err != nil {
		render.Error(w, r, err)
		return
	}

	result, err := h.journalService.Entries(user.ID, limit, page, isPrivate)
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, result)
}

func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	entry, err := h.journalService.ByID(user.ID, r.PathValue("id"))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, entry)
}

func (h *JournalHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	entry, err := h.journalService.Reanalyze(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, entry)
}

func (h *JournalHandler) Sentiment(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	points, err := h.journalService.Sentiment(user.ID, time.Now())
	if err != nil {
		render.Error(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]any{"trend": points})
}

func (h *JournalHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	prompt := h.journalService.Prompt(r.Context(), user.ID, r.URL.Query().Get("mood"))
	render.JSON(w, http.StatusOK, map[string]string{"prompt": prompt})
}
