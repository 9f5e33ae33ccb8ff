package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Public: restaurant menu
// --------------------------------------------------
func (h *Handler) GetMenu(c *gin.Context) {
	restaurantID := c.Param("id")

	items, err := h.service.Menu(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	if items == nil {
		items = []MenuItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   items,
	})
}

// --------------------------------------------------
// Partner: add menu item
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	restaurantID := c.Param("id")

	var input ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), restaurantID, input)
	if err != nil {
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"item":    item,
	})
}

// --------------------------------------------------
// Partner: update menu item
// --------------------------------------------------
func (h *Handler) UpdateItem(c *gin.Context) {
	itemID := c.Param("itemID")

	var input ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), itemID, input)
	if err != nil {
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"item":    item,
	})
}

// --------------------------------------------------
// Partner: toggle availability
// --------------------------------------------------
func (h *Handler) SetAvailability(c *gin.Context) {
	itemID := c.Param("itemID")

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "available is required"})
		return
	}

	if err := h.service.SetAvailability(c.Request.Context(), itemID, *req.Available); err != nil {
		status, body := errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"available": *req.Available,
	})
}

// errorResponse maps service errors onto HTTP responses. Validation errors
// surface per-field so the partner dashboard can highlight inputs.
func errorResponse(err error) (int, gin.H) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": fields,
		}
	}

	if errors.Is(err, ErrItemNotFound) {
		return http.StatusNotFound, gin.H{"error": err.Error()}
	}

	return http.StatusInternalServerError, gin.H{"error": err.Error()}
}
