package handlers

import (
	"errors"
	"net/http"

	"solmar/models"
	"solmar/services/booking"
	"solmar/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session pipeline over HTTP.
type BookingHandler struct {
	Sessions     booking.BookingSessionService
	Orchestrator booking.BookingOrchestrator
	Logger       *zap.Logger
}

func NewBookingHandler(sessions booking.BookingSessionService, orchestrator booking.BookingOrchestrator, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Sessions:     sessions,
		Orchestrator: orchestrator,
		Logger:       logger,
	}
}

// StartSession handles POST /api/booking/session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var body struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, token, err := h.Sessions.StartSession(c.Request.Context(), body.ServiceID)
	if err != nil {
		h.Logger.Warn("StartSession failed", zap.String("serviceId", body.ServiceID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown service", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":      session,
		"sessionToken": token,
	})
}

// UpdateFields handles PATCH /api/booking/session/:sessionID/fields.
func (h *BookingHandler) UpdateFields(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var body struct {
		Fields map[string]string `json:"fields" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.UpdateFields(c.Request.Context(), sessionID, body.Fields)
	if err != nil {
		h.respondSessionError(c, sessionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Validate handles POST /api/booking/session/:sessionID/validate.
func (h *BookingHandler) Validate(c *gin.Context) {
	sessionID := c.Param("sessionID")

	session, result, err := h.Sessions.Validate(c.Request.Context(), sessionID)
	if err != nil {
		h.respondSessionError(c, sessionID, err)
		return
	}

	status := http.StatusOK
	if !result.Valid() {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{
		"session":  session,
		"errors":   result.Errors,
		"warnings": result.Warnings,
	})
}

// AttachClientInfo handles POST /api/booking/session/:sessionID/client-info.
func (h *BookingHandler) AttachClientInfo(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var info models.ClientInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, fieldErrs, err := h.Sessions.AttachClientInfo(c.Request.Context(), sessionID, info)
	if err != nil {
		h.respondSessionError(c, sessionID, err)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Confirm handles POST /api/booking/session/:sessionID/confirm. On payment
// failure the session survives so the client can retry; on success the
// reservation is returned with its assigned booking identifier.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req booking.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	req.SessionID = c.Param("sessionID")

	reservation, err := h.Orchestrator.Confirm(c.Request.Context(), req)
	if err != nil {
		h.respondConfirmError(c, req.SessionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Sessions.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.Logger.Warn("CancelSession failed", zap.String("session", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": sessionID})
}

func (h *BookingHandler) respondSessionError(c *gin.Context, sessionID string, err error) {
	if errors.Is(err, booking.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": booking.ErrSessionNotFound.Error()})
		return
	}
	h.Logger.Error("booking session operation failed", zap.String("session", sessionID), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "booking session operation failed", "details": err.Error()})
}

func (h *BookingHandler) respondConfirmError(c *gin.Context, sessionID string, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSessionInvalid), errors.Is(err, booking.ErrClientInfoMissing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrChargeInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, payment.ErrDeclined),
		errors.Is(err, payment.ErrTokenRejected),
		errors.Is(err, payment.ErrGatewayUnreachable):
		// Payment failures are retryable from the client's point of view;
		// the session and its form data are preserved.
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error(), "retryable": true})
	default:
		h.Logger.Error("booking confirmation failed", zap.String("session", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
