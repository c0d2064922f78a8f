// Package rest exposes the funding ledger over HTTP using gin. Every
// mutating route requires a bearer token; the wallet address in the token
// subject becomes the caller for the operation.
package rest

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ahsanali17/crowdfund-backend/internal/config"
)

// Deps carries everything the router needs.
type Deps struct {
	Log           *slog.Logger
	Funding       fundingService
	Notifications notificationBrowser
	Tokens        tokenIssuer
	Validator     tokenValidator
	Pinger        dbPinger // nil when no archive is configured
	Version       string
}

// New builds the gin engine with all routes attached.
func New(cfg *config.Config, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	g := gin.New()
	g.Use(RequestID(), AccessLog(deps.Log), gin.Recovery())

	g.Use(cors.New(corsConfig(cfg.CORS)))

	healthH := NewHealthHandler(deps.Pinger, deps.Version)
	g.GET("/health", healthH.Health)
	g.GET("/health/live", healthH.Live)
	g.GET("/health/ready", healthH.Ready)

	eventsH := NewEvents(deps.Funding)
	notifH := NewNotifications(deps.Notifications)

	v1 := g.Group("/v1")
	{
		if cfg.Auth.DevTokenEndpoint {
			authH := NewAuth(deps.Tokens)
			v1.POST("/auth/token", authH.Token)
		}

		secured := v1.Group("")
		secured.Use(BearerAuth(deps.Validator))
		{
			secured.POST("/events", eventsH.Create)
			secured.GET("/events", eventsH.List)
			secured.GET("/events/:id", eventsH.Get)
			secured.PUT("/events/:id/status", eventsH.SetStatus)
			secured.POST("/events/:id/payout", eventsH.Payout)

			secured.POST("/events/:id/donations", eventsH.Donate)
			secured.DELETE("/events/:id/donations", eventsH.Withdraw)
			secured.GET("/events/:id/contributions/:address", eventsH.GetContribution)

			secured.GET("/events/:id/milestones", eventsH.ListMilestones)
			secured.POST("/events/:id/milestones", eventsH.AddMilestone)
			secured.DELETE("/events/:id/milestones/:index", eventsH.RemoveMilestone)

			secured.GET("/events/:id/notifications", notifH.ByEvent)
			secured.GET("/notifications", notifH.Recent)
		}
	}

	return g
}

// corsConfig translates our CORS settings into gin-contrib form. A lone
// "*" origin becomes AllowAllOrigins, which the library refuses to combine
// with credentials.
func corsConfig(cfg config.CORSConfig) cors.Config {
	out := cors.Config{
		AllowMethods:     splitCSV(cfg.AllowedMethods),
		AllowHeaders:     splitCSV(cfg.AllowedHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           time.Duration(cfg.MaxAge) * time.Second,
	}

	origins := splitCSV(cfg.AllowedOrigins)
	if len(origins) == 1 && origins[0] == "*" {
		out.AllowAllOrigins = true
		out.AllowCredentials = false
	} else {
		out.AllowOrigins = origins
	}

	return out
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
