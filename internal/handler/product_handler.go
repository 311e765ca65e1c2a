package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"greencart/shophub/internal/service"
	"greencart/shophub/pkg/response"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /products?category=&sustainableOnly=
func (h *ProductHandler) List(c *gin.Context) {
	sustainableOnly, _ := strconv.ParseBool(c.Query("sustainableOnly"))
	listing := h.productService.ListProducts(c.Query("category"), sustainableOnly)
	c.JSON(http.StatusOK, listing)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	detail, err := h.productService.GetProduct(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		response.InternalError(c, "product lookup failed")
		return
	}
	c.JSON(http.StatusOK, detail)
}
