package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"greencart/shophub/internal/service"
	"greencart/shophub/pkg/response"
)

type AdHandler struct {
	adService service.AdService
}

func NewAdHandler(adService service.AdService) *AdHandler {
	return &AdHandler{adService: adService}
}

type DeliverAdRequest struct {
	UserID     string `json:"userId"`
	DeviceInfo string `json:"deviceInfo"`
	Context    string `json:"context"`
}

// Deliver handles POST /deliver-ad. All fields are optional; an empty
// body still yields a small-model decision.
func (h *AdHandler) Deliver(c *gin.Context) {
	var req DeliverAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	decision := h.adService.Decide(req.UserID, req.DeviceInfo, req.Context)
	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"chosenModel":      decision.ChosenModel,
		"estimatedCo2":     decision.EstimatedCo2,
		"reasoningSummary": decision.Reasoning,
		"ad":               decision.Ad,
	})
}
