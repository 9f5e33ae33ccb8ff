package router

import (
	"time"

	"happymeals/internal/catalog"
	"happymeals/internal/chatbot"
	"happymeals/internal/middleware"
	"happymeals/internal/offers"
	"happymeals/internal/restaurant"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Restaurant *restaurant.Handler
	Catalog    *catalog.Handler
	Chatbot    *chatbot.Handler
	Offers     *offers.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ───────────────────────── RESTAURANTS ─────────────────────────
	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("", h.Restaurant.List)
		restaurants.GET("/:id", h.Restaurant.Get)
		restaurants.GET("/:id/menu", h.Catalog.GetMenu)
		restaurants.GET("/:id/offers", h.Offers.ListActive)

		// Partner menu management
		restaurants.POST("/:id/menu", h.Catalog.AddItem)
	}

	// ───────────────────────── MENU ITEMS ─────────────────────────
	menu := api.Group("/menu")
	{
		menu.PUT("/:itemID", h.Catalog.UpdateItem)
		menu.PATCH("/:itemID/availability", h.Catalog.SetAvailability)
		menu.POST("/:itemID/offer", h.Offers.SetOffer)
		menu.DELETE("/:itemID/offer", h.Offers.ClearOffer)
	}

	// ───────────────────────── CHATBOT ─────────────────────────
	bot := api.Group("/chatbot")
	{
		bot.POST("/generate-combo", h.Chatbot.GenerateCombo)
		bot.GET("/preferences", h.Chatbot.GetPreferences)
	}

	return r
}
