package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ScriptedSpythoN/demoos/internal/domain/classroom"
	"github.com/ScriptedSpythoN/demoos/internal/handler/http/middleware"
	"github.com/ScriptedSpythoN/demoos/internal/handler/http/response"
	classroomservice "github.com/ScriptedSpythoN/demoos/internal/service/classroom"
	"github.com/go-chi/chi/v5"
)

type ClassroomHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)

	CreateNote(w http.ResponseWriter, r *http.Request)
	ListNotes(w http.ResponseWriter, r *http.Request)

	CreateAssignment(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	SubmitAssignment(w http.ResponseWriter, r *http.Request)
	ListSubmissions(w http.ResponseWriter, r *http.Request)

	CreateTest(w http.ResponseWriter, r *http.Request)
	ListTests(w http.ResponseWriter, r *http.Request)
	TestQuestions(w http.ResponseWriter, r *http.Request)
	SubmitTest(w http.ResponseWriter, r *http.Request)
	TestResults(w http.ResponseWriter, r *http.Request)
}

type ClassroomHandlerImpl struct {
	classroomService *classroomservice.Service
}

func NewClassroomHandler(classroomService *classroomservice.Service) ClassroomHandler {
	return &ClassroomHandlerImpl{classroomService: classroomService}
}

// Create implements ClassroomHandler.
func (h *ClassroomHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req classroom.CreateClassroomRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateClassroom decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Classroom name is required", nil)
		return
	}

	created, err := h.classroomService.Create(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Classroom created", created)
}

// Join implements ClassroomHandler.
func (h *ClassroomHandlerImpl) Join(w http.ResponseWriter, r *http.Request) {
	var req classroom.JoinRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("JoinClassroom decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	joined, err := h.classroomService.Join(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Joined classroom", joined)
}

// ListMine implements ClassroomHandler. Returns classrooms the caller
// teaches or attends, depending on the role query parameter.
func (h *ClassroomHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var (
		list []classroom.ClassroomResponse
		err  error
	)
	if r.URL.Query().Get("as") == "teacher" {
		list, err = h.classroomService.ListForTeacher(r.Context(), userID)
	} else {
		list, err = h.classroomService.ListForStudent(r.Context(), userID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, list)
}

type createNoteRequest struct {
	Title   string `json:"title"`
	FileURL string `json:"file_url"`
}

// CreateNote implements ClassroomHandler.
func (h *ClassroomHandlerImpl) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateNote decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	note, err := h.classroomService.CreateNote(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"), req.Title, req.FileURL)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Note published", note)
}

// ListNotes implements ClassroomHandler.
func (h *ClassroomHandlerImpl) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.classroomService.ListNotes(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, notes)
}

type createAssignmentRequest struct {
	Title    string    `json:"title"`
	FileURL  string    `json:"file_url"`
	Deadline time.Time `json:"deadline"`
}

// CreateAssignment implements ClassroomHandler.
func (h *ClassroomHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req createAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Deadline.IsZero() {
		response.BadRequest(w, "Deadline is required", nil)
		return
	}

	a, err := h.classroomService.CreateAssignment(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"), req.Title, req.FileURL, req.Deadline)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Assignment published", a)
}

// ListAssignments implements ClassroomHandler.
func (h *ClassroomHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.classroomService.ListAssignments(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, assignments)
}

type submitAssignmentRequest struct {
	FileURL string `json:"file_url"`
}

// SubmitAssignment implements ClassroomHandler.
func (h *ClassroomHandlerImpl) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	var req submitAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sub, err := h.classroomService.SubmitAssignment(r.Context(), middleware.UserID(r), chi.URLParam(r, "assignmentID"), req.FileURL)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Assignment submitted", sub)
}

// ListSubmissions implements ClassroomHandler.
func (h *ClassroomHandlerImpl) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.classroomService.ListSubmissions(r.Context(), middleware.UserID(r), chi.URLParam(r, "assignmentID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, subs)
}

// CreateTest implements ClassroomHandler.
func (h *ClassroomHandlerImpl) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req classroom.CreateTestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if len(req.Questions) == 0 {
		response.BadRequest(w, "A test needs at least one question", nil)
		return
	}

	test, err := h.classroomService.CreateTest(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Test created", test)
}

// ListTests implements ClassroomHandler.
func (h *ClassroomHandlerImpl) ListTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.classroomService.ListTests(r.Context(), middleware.UserID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, tests)
}

// TestQuestions implements ClassroomHandler.
func (h *ClassroomHandlerImpl) TestQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.classroomService.TestQuestions(r.Context(), middleware.UserID(r), chi.URLParam(r, "testID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, questions)
}

// SubmitTest implements ClassroomHandler.
func (h *ClassroomHandlerImpl) SubmitTest(w http.ResponseWriter, r *http.Request) {
	var req classroom.SubmitTestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitTest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.TestID = chi.URLParam(r, "testID")

	result, err := h.classroomService.SubmitTest(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Test submitted", result)
}

// TestResults implements ClassroomHandler.
func (h *ClassroomHandlerImpl) TestResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.classroomService.TestResults(r.Context(), middleware.UserID(r), chi.URLParam(r, "testID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}
