package handlers

import (
	"errors"
	"net/http"

	"github.com/ArowuTest/raffle-backend/internal/raffle"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
	"github.com/ArowuTest/raffle-backend/internal/services"
	"github.com/ArowuTest/raffle-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// First match wins.
var errorMappings = []errorMapping{
	{raffle.ErrInsufficientFee, http.StatusBadRequest, "INSUFFICIENT_FEE"},
	{raffle.ErrInvalidRandomness, http.StatusBadRequest, "INVALID_RANDOMNESS"},
	{utils.ErrInvalidAddress, http.StatusBadRequest, "INVALID_ADDRESS"},
	{utils.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
	{raffle.ErrNotOpen, http.StatusConflict, "NOT_OPEN"},
	{raffle.ErrUpkeepNotNeeded, http.StatusConflict, "UPKEEP_NOT_NEEDED"},
	{raffle.ErrUnknownRequest, http.StatusConflict, "UNKNOWN_REQUEST"},
	{raffle.ErrNotCalculating, http.StatusConflict, "NOT_CALCULATING"},
	{raffle.ErrRequestNotStale, http.StatusConflict, "REQUEST_NOT_STALE"},
	{raffle.ErrTransferFailed, http.StatusBadGateway, "TRANSFER_FAILED"},
	{raffle.ErrPlayerIndex, http.StatusNotFound, "PLAYER_NOT_FOUND"},
	{repositories.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
}

// respondError writes {"error", "code"} for err, naming the violated precondition
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		body := gin.H{"error": err.Error(), "code": m.code}

		var notNeeded *raffle.UpkeepNotNeededError
		if errors.As(err, &notNeeded) {
			body["balance"] = notNeeded.Balance.String()
			body["players"] = notNeeded.Players
			body["phase"] = notNeeded.Phase
		}
		c.JSON(m.status, body)
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": "INTERNAL"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "code": "BAD_REQUEST"})
}
