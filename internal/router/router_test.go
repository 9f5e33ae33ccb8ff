package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"happymeals/internal/catalog"
	"happymeals/internal/chatbot"
	"happymeals/internal/offers"
	"happymeals/internal/restaurant"

	"github.com/gin-gonic/gin"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalogService := catalog.NewService(catalog.NewInMemoryRepository())
	catalogRepo := catalog.NewInMemoryRepository()
	restaurantService := restaurant.NewService(restaurant.NewInMemoryRepository(), catalogService)
	offerService := offers.NewService(catalogRepo)
	chatbotService := chatbot.NewService(catalogService, nil, 4)

	return New(Handlers{
		Restaurant: restaurant.NewHandler(restaurantService),
		Catalog:    catalog.NewHandler(catalogService),
		Chatbot:    chatbot.NewHandler(chatbotService),
		Offers:     offers.NewHandler(offerService, catalogService),
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter()

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRestaurantListEndpointRegistered(t *testing.T) {
	r := testRouter()

	req, _ := http.NewRequest("GET", "/api/restaurants", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
