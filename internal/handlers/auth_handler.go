package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/sociogram/internal/helpers"
	"github.com/joshua-takyi/sociogram/internal/services"
)

func Register(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		user, err := a.Register(c.Request.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func Login(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		user, token, err := a.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie(
			"access_token",
			token,
			int(helpers.TokenTTL.Seconds()),
			"/",
			"", // let Gin pick the current domain
			isProduction,
			true,
		)

		c.JSON(http.StatusOK, user)
	}
}

func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// Me reports the identity carried by the access token cookie. The token is
// advisory: it is never required by the mutation endpoints, which trust
// the userId supplied in the request body instead.
func Me(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "access token not found"})
			return
		}

		claims, err := a.TokenClaims(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":      claims.UserID,
			"isAdmin": claims.IsAdmin,
		})
	}
}
