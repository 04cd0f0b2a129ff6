package handlers

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/ArowuTest/raffle-backend/internal/utils"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
)

// RaffleHandler handles raffle HTTP requests
type RaffleHandler struct {
	raffleService services.RaffleService
}

// NewRaffleHandler creates a new RaffleHandler
func NewRaffleHandler(raffleService services.RaffleService) *RaffleHandler {
	return &RaffleHandler{raffleService: raffleService}
}

// GetStatus handles GET /raffle
func (h *RaffleHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.raffleService.Status(c.Request.Context()))
}

// GetPlayers handles GET /raffle/players
func (h *RaffleHandler) GetPlayers(c *gin.Context) {
	players := h.raffleService.Players(c.Request.Context())
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Hex()
	}
	c.JSON(http.StatusOK, gin.H{"players": out, "count": len(out)})
}

// GetPlayer handles GET /raffle/players/:index
func (h *RaffleHandler) GetPlayer(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, "Index must be an integer")
		return
	}
	player, err := h.raffleService.Player(c.Request.Context(), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"index": index, "player": player.Hex()})
}

// EnterRequest is the body of POST /raffle/enter. Amount is wei or "<n> ether".
type EnterRequest struct {
	Participant string `json:"participant" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
}

// Enter handles POST /raffle/enter
func (h *RaffleHandler) Enter(c *gin.Context) {
	var req EnterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	participant, err := utils.ParseAddress(req.Participant)
	if err != nil {
		respondError(c, err)
		return
	}
	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.raffleService.Enter(c.Request.Context(), participant, amount); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"participant": participant.Hex(), "amount": amount.String()})
}

// CheckUpkeep handles GET /raffle/upkeep?checkData=0x...
func (h *RaffleHandler) CheckUpkeep(c *gin.Context) {
	var checkData []byte
	if raw := c.Query("checkData"); raw != "" {
		var err error
		if checkData, err = hexutil.Decode(raw); err != nil {
			badRequest(c, "checkData must be 0x-prefixed hex")
			return
		}
	}
	ready, performData := h.raffleService.CheckUpkeep(c.Request.Context(), checkData)
	c.JSON(http.StatusOK, gin.H{"upkeepNeeded": ready, "performData": hexutil.Encode(performData)})
}

type performUpkeepRequest struct {
	PerformData string `json:"performData"`
}

// PerformUpkeep handles POST /raffle/upkeep
func (h *RaffleHandler) PerformUpkeep(c *gin.Context) {
	var req performUpkeepRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
	}
	var performData []byte
	if req.PerformData != "" {
		var err error
		if performData, err = hexutil.Decode(req.PerformData); err != nil {
			badRequest(c, "performData must be 0x-prefixed hex")
			return
		}
	}

	handle, err := h.raffleService.PerformUpkeep(c.Request.Context(), performData)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, handle)
}

// FulfillRequest is the coordinator callback body
type FulfillRequest struct {
	RequestID   string   `json:"requestId" binding:"required"`
	RandomWords []string `json:"randomWords" binding:"required,min=1"`
}

// Fulfill handles POST /raffle/fulfill
func (h *RaffleHandler) Fulfill(c *gin.Context) {
	var req FulfillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	words := make([]*big.Int, len(req.RandomWords))
	for i, raw := range req.RandomWords {
		v, err := utils.ParseRandomValue(raw)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		words[i] = v
	}

	winner, err := h.raffleService.FulfillRandomness(c.Request.Context(), req.RequestID, words)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requestId": req.RequestID, "winner": winner.Hex()})
}

// Reissue handles POST /raffle/reissue
func (h *RaffleHandler) Reissue(c *gin.Context) {
	handle, err := h.raffleService.ReissueRequest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, handle)
}

// GetWinners handles GET /raffle/winners?page=&limit=
func (h *RaffleHandler) GetWinners(c *gin.Context) {
	page, limit := utils.Pagination(c.Query("page"), c.Query("limit"), 20, 100)
	winners, total, err := h.raffleService.Winners(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"winners": winners, "total": total, "page": page, "limit": limit})
}

// GetEvents handles GET /raffle/events?type=&page=&limit=
func (h *RaffleHandler) GetEvents(c *gin.Context) {
	page, limit := utils.Pagination(c.Query("page"), c.Query("limit"), 50, 500)
	eventType := models.RaffleEventType(c.Query("type"))
	events, err := h.raffleService.Events(c.Request.Context(), page, limit, eventType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "page": page, "limit": limit})
}

// GetAccount handles GET /accounts/:address
func (h *RaffleHandler) GetAccount(c *gin.Context) {
	address, err := utils.ParseAddress(c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}
	account, err := h.raffleService.Account(c.Request.Context(), address)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}
