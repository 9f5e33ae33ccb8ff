package restaurant

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /restaurants?cuisine=&search=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Cuisine: c.Query("cuisine"),
		Search:  c.Query("search"),
	}

	restaurants, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load restaurants"})
		return
	}

	if restaurants == nil {
		restaurants = []Restaurant{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"restaurants": restaurants,
	})
}

// --------------------------------------------------
// GET /restaurants/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	details, err := h.service.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load restaurant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    details,
	})
}
