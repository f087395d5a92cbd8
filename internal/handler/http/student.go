package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ScriptedSpythoN/demoos/internal/domain/student"
	"github.com/ScriptedSpythoN/demoos/internal/handler/http/response"
	studentservice "github.com/ScriptedSpythoN/demoos/internal/service/student"
	"github.com/go-chi/chi/v5"
)

type StudentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByRollNo(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DepartmentAnalytics(w http.ResponseWriter, r *http.Request)
}

type StudentHandlerImpl struct {
	studentService *studentservice.Service
}

func NewStudentHandler(studentService *studentservice.Service) StudentHandler {
	return &StudentHandlerImpl{studentService: studentService}
}

// Create implements StudentHandler.
func (h *StudentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req student.CreateStudentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateStudent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.studentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Student registered successfully", created)
}

// GetByRollNo implements StudentHandler.
func (h *StudentHandlerImpl) GetByRollNo(w http.ResponseWriter, r *http.Request) {
	rollNo := chi.URLParam(r, "rollNo")
	if rollNo == "" {
		response.BadRequest(w, "Roll number is required", nil)
		return
	}

	st, err := h.studentService.GetByRollNo(r.Context(), rollNo)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, st)
}

// List implements StudentHandler.
func (h *StudentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
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

	students, err := h.studentService.List(r.Context(), departmentID, semester)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, students)
}

// Delete implements StudentHandler.
func (h *StudentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Student ID is required", nil)
		return
	}

	if err := h.studentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Student deleted", nil)
}

// DepartmentAnalytics implements StudentHandler.
func (h *StudentHandlerImpl) DepartmentAnalytics(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	analytics, err := h.studentService.DepartmentAnalytics(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, analytics)
}
