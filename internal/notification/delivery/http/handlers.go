package http

import (
	"lead-notification-srv/internal/notification"
	"lead-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// LeadsCreated queues notifications for newly created or imported leads.
// @Summary Lead(s) created
// @Tags Events
// @Accept json
// @Produce json
// @Success 202 {object} response.Resp
// @Router /internal/api/v1/events/leads-created [POST]
func (h *Handler) LeadsCreated(c *gin.Context) {
	var req leadsCreatedReq
	if err := h.bindJSON(c, &req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.dispatcher.LeadsCreated(c.Request.Context(), req.toInput()); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.Accepted(c, acceptedResp{Accepted: true})
}

// LeadAssigned queues the assignee's notification.
// @Summary Lead assigned
// @Tags Events
// @Accept json
// @Produce json
// @Success 202 {object} response.Resp
// @Router /internal/api/v1/events/lead-assigned [POST]
func (h *Handler) LeadAssigned(c *gin.Context) {
	var req leadAssignedReq
	if err := h.bindJSON(c, &req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.dispatcher.LeadAssigned(c.Request.Context(), req.toInput()); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.Accepted(c, acceptedResp{Accepted: true})
}

func (h *Handler) Broadcast(c *gin.Context) {
	var req broadcastReq
	if err := h.bindJSON(c, &req); err != nil {
		response.Error(c, err, nil)
		return
	}

	count, err := h.uc.Broadcast(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, countResp{Count: count})
}

// List returns the caller's latest notifications, newest first.
func (h *Handler) List(c *gin.Context) {
	id, err := h.currentIdentity(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var req listReq
	if err := h.bindQuery(c, &req); err != nil {
		response.Error(c, err, nil)
		return
	}

	ns, err := h.uc.List(c.Request.Context(), notification.ListInput{UserID: id.UserID, Limit: req.Limit})
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	if ns == nil {
		ns = []notificationResp{}
	}
	response.OK(c, ns)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	id, err := h.currentIdentity(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	count, err := h.uc.UnreadCount(c.Request.Context(), id.UserID)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, countResp{Count: count})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := h.currentIdentity(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	n, err := h.uc.MarkRead(c.Request.Context(), notification.MarkReadInput{ID: c.Param("id"), UserID: id.UserID})
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, n)
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	id, err := h.currentIdentity(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.MarkAllRead(c.Request.Context(), id.UserID)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, successResp{Success: true, Updated: updated})
}
