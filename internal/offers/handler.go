package offers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"happymeals/internal/catalog"

	"github.com/gin-gonic/gin"
)

// MenuReader lists a restaurant's items for the public offers view.
type MenuReader interface {
	Menu(ctx context.Context, restaurantID string) ([]catalog.MenuItem, error)
}

type Handler struct {
	service *Service
	menu    MenuReader
}

func NewHandler(service *Service, menu MenuReader) *Handler {
	return &Handler{service: service, menu: menu}
}

// --------------------------------------------------
// POST /menu/:itemID/offer
// --------------------------------------------------
func (h *Handler) SetOffer(c *gin.Context) {
	var input OfferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.service.SetOffer(c.Request.Context(), c.Param("itemID"), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, catalog.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"item":    item,
	})
}

// --------------------------------------------------
// DELETE /menu/:itemID/offer
// --------------------------------------------------
func (h *Handler) ClearOffer(c *gin.Context) {
	if err := h.service.ClearOffer(c.Request.Context(), c.Param("itemID")); err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --------------------------------------------------
// GET /restaurants/:id/offers
// --------------------------------------------------
func (h *Handler) ListActive(c *gin.Context) {
	items, err := h.menu.Menu(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load offers"})
		return
	}

	active := ActiveOffers(items, time.Now())
	if active == nil {
		active = []catalog.MenuItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"offers":  active,
	})
}
