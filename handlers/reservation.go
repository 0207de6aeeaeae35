package handlers

import (
	"errors"
	"net/http"

	"solmar/database/repository/reservation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves persisted reservations.
type ReservationHandler struct {
	Repo   reservationRepo.ReservationRepository
	Logger *zap.Logger
}

func NewReservationHandler(repo reservationRepo.ReservationRepository, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Repo: repo, Logger: logger}
}

// GetReservationByID handles GET /api/reservations/:id.
func (h *ReservationHandler) GetReservationByID(c *gin.Context) {
	id := c.Param("id")

	reservation, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		h.Logger.Error("GetReservationByID failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reservation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reservation)
}
