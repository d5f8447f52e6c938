package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hoteldesk-backend/config"
	"hoteldesk-backend/internal/auth"
	"hoteldesk-backend/internal/hotel"
	"hoteldesk-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, desk *hotel.Desk, authSvc *auth.Service) *gin.Engine {
	r := gin.Default()

	if len(cfg.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		r.Use(cors.New(corsCfg))
	}

	handler := NewHandler(desk, authSvc)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)

	api.POST("/login", handler.Login)

	authed := api.Group("")
	authed.Use(mw.RequireAuth(authSvc))
	{
		authed.POST("/accounts", mw.RequireRole(auth.RoleSuperadmin), handler.CreateAccount)
		authed.PATCH("/account/password", handler.ChangePassword)

		authed.GET("/rooms", handler.ListRooms)
		authed.POST("/rooms", handler.CreateRoom)
		authed.DELETE("/rooms/:number", handler.DeleteRoom)
		authed.POST("/rooms/:number/free", handler.FreeRoom)

		authed.GET("/guests", handler.ListGuests)
		authed.GET("/guests/search", handler.SearchGuests)
		authed.POST("/guests", handler.CreateGuest)
		authed.GET("/guests/:id", handler.GetGuest)
		authed.PATCH("/guests/:id", handler.UpdateGuest)
		authed.POST("/guests/:id/checkout", handler.CheckoutGuest)
		authed.DELETE("/guests/:id", handler.DeleteGuest)

		authed.POST("/guests/:id/nights", handler.AddNight)
		authed.PATCH("/guests/:id/nights/:number", handler.SetNightPaid)

		authed.GET("/report", caching, handler.GetReport)

		authed.GET("/guests/:id/receipt.csv", handler.ReceiptCSV)
		authed.GET("/guests/:id/receipt.pdf", handler.ReceiptPDF)
	}

	return r
}
