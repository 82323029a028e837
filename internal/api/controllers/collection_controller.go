package controllers

import (
	"concierge/internal/models/request_models"
	"concierge/internal/models/response_models"
	"concierge/internal/services"
	"concierge/pkg/utils"
	"github.com/gin-gonic/gin"
)

// CollectionController serves a proposal's items and guests.
type CollectionController struct {
	collectionService services.CollectionServiceInterface
}

func NewCollectionController(collectionService services.CollectionServiceInterface) *CollectionController {
	return &CollectionController{
		collectionService: collectionService,
	}
}

// AddItem godoc
// @Summary Add item to proposal
// @Tags Proposal Items
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param request body request_models.AddProposalItemRequest true "Item"
// @Success 201 {object} response_models.ProposalItemResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Example {json} Request Body Example:
//
//	{
//	  "category": "Dining",
//	  "title": "Private Chef Dinner",
//	  "scheduledAt": "2025-03-16T19:00:00",
//	  "price": 1500
//	}
//
// @Router /api/proposals/{id}/items [post]
func (cc *CollectionController) AddItem(c *gin.Context) {
	id, ok := pathID(c, "id", "Proposal not found")
	if !ok {
		return
	}

	var req request_models.AddProposalItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := cc.collectionService.AddItem(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Item added successfully")
}

// ListGuests godoc
// @Summary List proposal guests
// @Description Guests in the order they were added
// @Tags Proposal Guests
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {array} db_models.ProposalGuest
// @Router /api/proposals/{id}/guests [get]
func (cc *CollectionController) ListGuests(c *gin.Context) {
	id, ok := pathID(c, "id", "Proposal not found")
	if !ok {
		return
	}

	guests, err := cc.collectionService.ListGuests(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, guests, "Guests fetched successfully")
}

// AddGuest godoc
// @Summary Add guest to proposal
// @Tags Proposal Guests
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param request body request_models.AddProposalGuestRequest true "Guest"
// @Success 201 {object} db_models.ProposalGuest
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/proposals/{id}/guests [post]
func (cc *CollectionController) AddGuest(c *gin.Context) {
	id, ok := pathID(c, "id", "Proposal not found")
	if !ok {
		return
	}

	var req request_models.AddProposalGuestRequest
	if !bindJSON(c, &req) {
		return
	}

	guest, err := cc.collectionService.AddGuest(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, guest, "Guest added successfully")
}

// RemoveGuest godoc
// @Summary Remove guest from proposal
// @Tags Proposal Guests
// @Produce json
// @Param id path int true "Proposal ID"
// @Param guestId path int true "Guest ID"
// @Success 200 {object} response_models.DeleteResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/proposals/{id}/guests/{guestId} [delete]
func (cc *CollectionController) RemoveGuest(c *gin.Context) {
	id, ok := pathID(c, "id", "Guest not found")
	if !ok {
		return
	}
	guestID, ok := pathID(c, "guestId", "Guest not found")
	if !ok {
		return
	}

	if err := cc.collectionService.RemoveGuest(c.Request.Context(), id, guestID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.DeleteResponse{Success: true}, "Guest removed successfully")
}
