package handlers

import (
	"github.com/Het4705/chic-dashboard-haven/internal/ai"
	"github.com/Het4705/chic-dashboard-haven/internal/analytics"
	"github.com/Het4705/chic-dashboard-haven/internal/catalog"
	"github.com/Het4705/chic-dashboard-haven/internal/media"
	"github.com/Het4705/chic-dashboard-haven/internal/orders"
	"github.com/Het4705/chic-dashboard-haven/internal/reels"
	"github.com/Het4705/chic-dashboard-haven/internal/store"
	"github.com/Het4705/chic-dashboard-haven/internal/users"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store store.Store
	Media media.Uploader

	Products    *catalog.ProductService
	Collections *catalog.CollectionService
	Orders      *orders.Service
	Users       *users.Service
	Reels       *reels.Service
	Analytics   *analytics.Service

	AIService *ai.AIService // nil when GEMINI_API_KEY is not configured
}
