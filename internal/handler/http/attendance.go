package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ScriptedSpythoN/demoos/internal/domain/attendance"
	"github.com/ScriptedSpythoN/demoos/internal/handler/http/middleware"
	"github.com/ScriptedSpythoN/demoos/internal/handler/http/response"
	attendanceservice "github.com/ScriptedSpythoN/demoos/internal/service/attendance"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	RollList(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	StudentStats(w http.ResponseWriter, r *http.Request)
	AuditTrail(w http.ResponseWriter, r *http.Request)
	MySchedule(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceservice.Service
}

func NewAttendanceHandler(attendanceService *attendanceservice.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// RollList implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RollList(w http.ResponseWriter, r *http.Request) {
	var req attendance.RollListRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RollList decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	departmentID := r.URL.Query().Get("department_id")
	semester, err := strconv.Atoi(r.URL.Query().Get("semester"))
	if departmentID == "" || err != nil {
		response.BadRequest(w, "department_id and semester query parameters are required", nil)
		return
	}

	list, err := h.attendanceService.RollList(r.Context(), req, departmentID, semester)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, list)
}

// Submit implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitAttendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.attendanceService.Submit(r.Context(), req, middleware.UserID(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance submitted", nil)
}

// StudentStats implements AttendanceHandler.
func (h *AttendanceHandlerImpl) StudentStats(w http.ResponseWriter, r *http.Request) {
	rollNo := chi.URLParam(r, "rollNo")
	if rollNo == "" {
		response.BadRequest(w, "Roll number is required", nil)
		return
	}

	stats, err := h.attendanceService.StudentStats(r.Context(), rollNo)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// AuditTrail implements AttendanceHandler.
func (h *AttendanceHandlerImpl) AuditTrail(w http.ResponseWriter, r *http.Request) {
	rollNo := chi.URLParam(r, "rollNo")
	if rollNo == "" {
		response.BadRequest(w, "Roll number is required", nil)
		return
	}

	trail, err := h.attendanceService.AuditTrail(r.Context(), rollNo)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, trail)
}

// MySchedule implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MySchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.attendanceService.FacultySchedule(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, schedule)
}
