package controllers

import (
	"concierge/internal/models/request_models"
	"concierge/internal/services"
	"concierge/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ProposalController struct {
	proposalService services.ProposalServiceInterface
}

func NewProposalController(proposalService services.ProposalServiceInterface) *ProposalController {
	return &ProposalController{
		proposalService: proposalService,
	}
}

// ListProposals godoc
// @Summary List proposals
// @Description Fetch all proposals newest first, with reservation, member and items
// @Tags Proposal
// @Produce json
// @Success 200 {array} response_models.ProposalResponse
// @Router /api/proposals [get]
func (p *ProposalController) ListProposals(c *gin.Context) {
	proposals, err := p.proposalService.ListProposals(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, proposals, "Proposals fetched successfully")
}

// CreateProposal godoc
// @Summary Create proposal
// @Description Create a DRAFT proposal for an existing reservation
// @Tags Proposal
// @Accept json
// @Produce json
// @Param request body request_models.CreateProposalRequest true "Reservation ID"
// @Success 201 {object} response_models.ProposalResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/proposals [post]
func (p *ProposalController) CreateProposal(c *gin.Context) {
	var req request_models.CreateProposalRequest
	if !bindJSON(c, &req) {
		return
	}

	proposal, err := p.proposalService.CreateProposal(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, proposal, "Proposal created successfully")
}

// GetProposal godoc
// @Summary Get proposal by ID
// @Description Fetch a proposal with reservation, member, items, guests and sent emails
// @Tags Proposal
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} response_models.ProposalResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/proposals/{id} [get]
func (p *ProposalController) GetProposal(c *gin.Context) {
	id, ok := pathID(c, "id", "Proposal not found")
	if !ok {
		return
	}

	proposal, err := p.proposalService.GetProposal(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, proposal, "Proposal fetched successfully")
}

// UpdateProposal godoc
// @Summary Update proposal status
// @Tags Proposal
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param request body request_models.UpdateProposalRequest true "New status"
// @Success 200 {object} response_models.ProposalResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/proposals/{id} [patch]
func (p *ProposalController) UpdateProposal(c *gin.Context) {
	id, ok := pathID(c, "id", "Proposal not found")
	if !ok {
		return
	}

	var req request_models.UpdateProposalRequest
	if !bindJSON(c, &req) {
		return
	}

	proposal, err := p.proposalService.UpdateProposal(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, proposal, "Proposal updated successfully")
}

// SendProposal godoc
// @Summary Send proposal
// @Description Mark the proposal SENT and log the email to the member
// @Tags Proposal
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} response_models.ProposalResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/proposals/{id}/send [post]
func (p *ProposalController) SendProposal(c *gin.Context) {
	id, ok := pathID(c, "id", "Proposal not found")
	if !ok {
		return
	}

	proposal, err := p.proposalService.SendProposal(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, proposal, "Proposal sent successfully")
}
