package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/ScriptedSpythoN/demoos/internal/domain/medical"
	"github.com/ScriptedSpythoN/demoos/internal/handler/http/response"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/storage"
	medicalservice "github.com/ScriptedSpythoN/demoos/internal/service/medical"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxDocumentSize caps medical document uploads at 10 MB.
const maxDocumentSize = 10 << 20

const formDateLayout = "2006-01-02"

var allowedDocumentExts = []string{".pdf", ".png", ".jpg", ".jpeg"}

type MedicalHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Jobs(w http.ResponseWriter, r *http.Request)
}

type MedicalHandlerImpl struct {
	medicalService *medicalservice.Service
	fileStorage    storage.FileStorage
}

func NewMedicalHandler(medicalService *medicalservice.Service, fileStorage storage.FileStorage) MedicalHandler {
	return &MedicalHandlerImpl{medicalService: medicalService, fileStorage: fileStorage}
}

// Submit implements MedicalHandler. The request arrives as a multipart
// form carrying the declared leave details plus the supporting document.
func (h *MedicalHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)
	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	rollNo := r.FormValue("student_roll_no")
	departmentID := r.FormValue("department_id")
	reason := r.FormValue("reason")
	if rollNo == "" || departmentID == "" {
		response.BadRequest(w, "student_roll_no and department_id are required", nil)
		return
	}

	fromDate, err := time.Parse(formDateLayout, r.FormValue("from_date"))
	if err != nil {
		response.BadRequest(w, "from_date must be in YYYY-MM-DD format", nil)
		return
	}
	toDate, err := time.Parse(formDateLayout, r.FormValue("to_date"))
	if err != nil {
		response.BadRequest(w, "to_date must be in YYYY-MM-DD format", nil)
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		response.BadRequest(w, "Medical document is required", nil)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	allowed := false
	for _, e := range allowedDocumentExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		response.BadRequest(w, "Document must be a PDF or an image (png, jpg)", nil)
		return
	}

	path := fmt.Sprintf("medical/%s%s", uuid.NewString(), ext)
	storedPath, err := h.fileStorage.Upload(r.Context(), file, path, header.Header.Get("Content-Type"))
	if err != nil {
		slog.Error("SubmitMedical upload error", "error", err)
		response.InternalServerError(w, "Failed to store document")
		return
	}

	resp, err := h.medicalService.Submit(r.Context(), medical.SubmitRequest{
		StudentRollNo: rollNo,
		DepartmentID:  departmentID,
		FromDate:      fromDate,
		ToDate:        toDate,
		Reason:        reason,
		DocumentPath:  storedPath,
	})
	if err != nil {
		// The service rejected the submission, so the stored document has
		// no request row pointing at it.
		if delErr := h.fileStorage.Delete(r.Context(), storedPath); delErr != nil {
			slog.Error("SubmitMedical cleanup error", "path", storedPath, "error", delErr)
		}
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Medical request submitted", resp)
}

// Review implements MedicalHandler.
func (h *MedicalHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req medical.ReviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ReviewMedical decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RequestID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.medicalService.Review(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Medical request reviewed", nil)
}

// Pending implements MedicalHandler.
func (h *MedicalHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	pending, err := h.medicalService.PendingByDepartment(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, pending)
}

// Jobs implements MedicalHandler.
func (h *MedicalHandlerImpl) Jobs(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	jobs, err := h.medicalService.Jobs(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, jobs)
}
