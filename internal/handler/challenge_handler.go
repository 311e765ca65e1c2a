package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"greencart/shophub/internal/service"
	"greencart/shophub/pkg/response"
)

type ChallengeHandler struct {
	challengeService service.ChallengeService
}

func NewChallengeHandler(challengeService service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

type PlayChallengeRequest struct {
	UserID        string `json:"userId"`
	ProductID     string `json:"productId"`
	ChallengeType string `json:"challengeType"`
}

// Play handles POST /game-challenge
func (h *ChallengeHandler) Play(c *gin.Context) {
	var req PlayChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.challengeService.Play(c.Request.Context(), req.UserID, req.ProductID, req.ChallengeType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserIDRequired):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "challenge failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"reward":        result.Reward,
		"carbonImpact":  result.CarbonImpact,
		"challengeType": result.ChallengeType,
	})
}
