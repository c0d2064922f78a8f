package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Auth serves the development token endpoint. It mints a bearer token for
// any wallet address without proof of ownership, so the route is only
// mounted when auth.dev_token_endpoint is enabled.
type Auth struct {
	tokens tokenIssuer
}

// NewAuth creates the auth handler.
func NewAuth(tokens tokenIssuer) *Auth {
	return &Auth{tokens: tokens}
}

// Token handles POST /v1/auth/token.
func (h *Auth) Token(c *gin.Context) {
	var req struct {
		Wallet string `json:"wallet"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("BAD_REQUEST", err.Error()))
		return
	}

	wallet := strings.TrimSpace(req.Wallet)
	if wallet == "" {
		c.JSON(http.StatusBadRequest, errorBody("BAD_REQUEST", "wallet is required"))
		return
	}

	token, err := h.tokens.GenerateAccessToken(wallet)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("INTERNAL", "token generation failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "Bearer"})
}
