package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ScriptedSpythoN/demoos/internal/domain/subject"
	"github.com/ScriptedSpythoN/demoos/internal/handler/http/response"
	subjectservice "github.com/ScriptedSpythoN/demoos/internal/service/subject"
	"github.com/go-chi/chi/v5"
)

type SubjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SubjectHandlerImpl struct {
	subjectService *subjectservice.Service
}

func NewSubjectHandler(subjectService *subjectservice.Service) SubjectHandler {
	return &SubjectHandlerImpl{subjectService: subjectService}
}

// Create implements SubjectHandler.
func (h *SubjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req subject.CreateSubjectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateSubject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.subjectService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Subject created successfully", created)
}

// Get implements SubjectHandler.
func (h *SubjectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Subject ID is required", nil)
		return
	}

	s, err := h.subjectService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, s)
}

// List implements SubjectHandler.
func (h *SubjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("department_id")
	semester := 0
	if s := r.URL.Query().Get("semester"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			response.BadRequest(w, "Semester must be a number", nil)
			return
		}
		semester = parsed
	}

	subjects, err := h.subjectService.List(r.Context(), departmentID, semester)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, subjects)
}

// Delete implements SubjectHandler.
func (h *SubjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Subject ID is required", nil)
		return
	}

	if err := h.subjectService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Subject deleted", nil)
}
