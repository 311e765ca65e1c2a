package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"greencart/shophub/internal/model"
	"greencart/shophub/internal/service"
	"greencart/shophub/pkg/response"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type UpdateCartRequest struct {
	UserID  string              `json:"userId"`
	Items   []model.CartItem    `json:"items"`
	Rewards []model.RewardGrant `json:"rewards"`
}

// Update handles POST /cart/update
func (h *CartHandler) Update(c *gin.Context) {
	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	summary, err := h.cartService.ReplaceCart(c.Request.Context(), req.UserID, req.Items, req.Rewards)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserIDRequired):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "cart update failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":               true,
		"cartSize":              summary.CartSize,
		"sustainabilityMetrics": summary.Metrics,
	})
}

// Get handles GET /cart/:userId
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.cartService.ComputeCartView(c.Request.Context(), c.Param("userId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserIDRequired):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, "cart lookup failed")
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
