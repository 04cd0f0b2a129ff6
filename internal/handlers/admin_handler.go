package handlers

import (
	"net/http"

	"github.com/ArowuTest/raffle-backend/internal/middleware"
	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/ArowuTest/raffle-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// AdminHandler manages the payout blacklist
type AdminHandler struct {
	payoutService services.PayoutService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(payoutService services.PayoutService) *AdminHandler {
	return &AdminHandler{payoutService: payoutService}
}

// GetBlacklist handles GET /admin/blacklist
func (h *AdminHandler) GetBlacklist(c *gin.Context) {
	entries, err := h.payoutService.Blacklist(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

type blacklistRequest struct {
	Address string `json:"address" binding:"required"`
	Reason  string `json:"reason"`
}

// AddToBlacklist handles POST /admin/blacklist
func (h *AdminHandler) AddToBlacklist(c *gin.Context) {
	var req blacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	address, err := utils.ParseAddress(req.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	createdBy := c.GetString(middleware.ContextUserEmail)
	if err := h.payoutService.AddToBlacklist(c.Request.Context(), address, req.Reason, createdBy); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"address": address.Hex(), "reason": req.Reason})
}

// RemoveFromBlacklist handles DELETE /admin/blacklist/:address
func (h *AdminHandler) RemoveFromBlacklist(c *gin.Context) {
	address, err := utils.ParseAddress(c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.payoutService.RemoveFromBlacklist(c.Request.Context(), address); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
