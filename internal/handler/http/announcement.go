package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ScriptedSpythoN/demoos/internal/domain/announcement"
	"github.com/ScriptedSpythoN/demoos/internal/handler/http/middleware"
	"github.com/ScriptedSpythoN/demoos/internal/handler/http/response"
	announcementservice "github.com/ScriptedSpythoN/demoos/internal/service/announcement"
	"github.com/go-chi/chi/v5"
)

type AnnouncementHandler interface {
	CreateGroup(w http.ResponseWriter, r *http.Request)
	JoinGroup(w http.ResponseWriter, r *http.Request)
	LeaveGroup(w http.ResponseWriter, r *http.Request)
	ListGroups(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	UpdateMemberRole(w http.ResponseWriter, r *http.Request)

	Post(w http.ResponseWriter, r *http.Request)
	Feed(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Vote(w http.ResponseWriter, r *http.Request)
	React(w http.ResponseWriter, r *http.Request)
	Tags(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService *announcementservice.Service
}

func NewAnnouncementHandler(announcementService *announcementservice.Service) AnnouncementHandler {
	return &AnnouncementHandlerImpl{announcementService: announcementService}
}

// CreateGroup implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req announcement.CreateGroupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateGroup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Name == "" {
		response.BadRequest(w, "Group name is required", nil)
		return
	}

	g, err := h.announcementService.CreateGroup(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Group created", g)
}

// JoinGroup implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) JoinGroup(w http.ResponseWriter, r *http.Request) {
	var req announcement.JoinGroupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("JoinGroup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	g, err := h.announcementService.JoinGroup(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Joined group", g)
}

// LeaveGroup implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.announcementService.LeaveGroup(r.Context(), chi.URLParam(r, "groupID"), middleware.UserID(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Left group", nil)
}

// ListGroups implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.announcementService.ListGroups(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, groups)
}

// ListMembers implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.announcementService.ListMembers(r.Context(), chi.URLParam(r, "groupID"), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, members)
}

// UpdateMemberRole implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	var req announcement.UpdateRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateMemberRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.announcementService.UpdateMemberRole(r.Context(), chi.URLParam(r, "groupID"), middleware.UserID(r), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Member role updated", nil)
}

// Post implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Post(w http.ResponseWriter, r *http.Request) {
	var req announcement.CreateAnnouncementRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PostAnnouncement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	view, err := h.announcementService.Post(r.Context(), chi.URLParam(r, "groupID"), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Announcement posted", view)
}

// Feed implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Feed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.announcementService.Feed(r.Context(), chi.URLParam(r, "groupID"), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, feed)
}

// Delete implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.announcementService.Delete(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r)); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Announcement deleted", nil)
}

// Vote implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Vote(w http.ResponseWriter, r *http.Request) {
	var req announcement.VoteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Vote decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.announcementService.Vote(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Vote recorded", nil)
}

// React implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) React(w http.ResponseWriter, r *http.Request) {
	var req announcement.ReactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("React decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AnnouncementID = chi.URLParam(r, "id")

	added, err := h.announcementService.React(r.Context(), middleware.UserID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]bool{"added": added})
}

// Tags implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.announcementService.Tags(r.Context(), chi.URLParam(r, "groupID"), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, tags)
}
