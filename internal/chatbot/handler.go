package chatbot

import (
	"errors"
	"net/http"

	"happymeals/internal/catalog"
	"happymeals/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/chatbot/generate-combo
// Body: { priceRange, preferences, restaurantId? }
// --------------------------------------------------
func (h *Handler) GenerateCombo(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  bindErrors(err),
		})
		return
	}

	resp, err := h.service.Suggest(c.Request.Context(), req)
	if err != nil {
		logger.Error("combo generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating combos. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// bindErrors reports one message per missing field.
func bindErrors(err error) []string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return []string{"invalid request body"}
	}

	var msgs []string
	for _, fe := range verr {
		switch fe.Field() {
		case "PriceRange":
			msgs = append(msgs, "please provide a valid price range")
		case "Preferences":
			msgs = append(msgs, "please describe your preferences")
		}
	}
	if len(msgs) == 0 {
		msgs = []string{"invalid request body"}
	}
	return msgs
}

// --------------------------------------------------
// GET /api/chatbot/preferences
// Static option lists for the chat UI
// --------------------------------------------------
func (h *Handler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"dietary":     catalog.DietaryOptions,
			"spiceLevels": catalog.SpiceLevels,
			"allergens":   catalog.AllergenOptions,
			"categories":  catalog.Categories,
		},
	})
}
