package controllers

import (
	"concierge/internal/models/response_models"
	"concierge/internal/services"
	"concierge/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	reservationService services.ReservationServiceInterface
}

func NewReservationController(reservationService services.ReservationServiceInterface) *ReservationController {
	return &ReservationController{
		reservationService: reservationService,
	}
}

// ListReservations godoc
// @Summary List reservations
// @Description Fetch every reservation with its member and proposals
// @Tags Reservation
// @Produce json
// @Success 200 {array} response_models.ReservationResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/reservations [get]
func (r *ReservationController) ListReservations(c *gin.Context) {
	reservations, err := r.reservationService.ListReservations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reservations, "Reservations fetched successfully")
}

// GetReservation godoc
// @Summary Get reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response_models.ReservationResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/reservations/{id} [get]
func (r *ReservationController) GetReservation(c *gin.Context) {
	id, ok := pathID(c, "id", "Reservation not found")
	if !ok {
		return
	}

	reservation, err := r.reservationService.GetReservation(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reservation, "Reservation fetched successfully")
}

// DeleteReservation godoc
// @Summary Delete reservation
// @Description Delete a reservation together with its proposals, their items, guests and sent emails
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response_models.DeleteResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/reservations/{id}/delete [delete]
func (r *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := pathID(c, "id", "Reservation not found")
	if !ok {
		return
	}

	if _, err := r.reservationService.DeleteReservation(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.DeleteResponse{Success: true}, "Reservation deleted successfully")
}
