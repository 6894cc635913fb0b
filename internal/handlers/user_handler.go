package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/sociogram/internal/services"
)

// Mutation endpoints take the requester identity from the userId field of
// the request body. That contract is inherited from the reference system
// and is known to be weak; see DESIGN.md before tightening it.

func UpdateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetId := c.Param("id")

		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		requesterId, _ := body["userId"].(string)
		requesterIsAdmin, _ := body["isAdmin"].(bool)

		if err := u.UpdateUser(c.Request.Context(), targetId, requesterId, requesterIsAdmin, body); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, "Account has been updated")
	}
}

func DeleteUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetId := c.Param("id")

		var req struct {
			UserID   string `json:"userId"`
			IsAdmin  bool   `json:"isAdmin"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := u.DeleteUser(c.Request.Context(), targetId, req.UserID, req.IsAdmin, req.Password); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, "Account has been deleted successfully")
	}
}

func GetUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := u.GetUser(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func FollowUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID string `json:"userId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := u.Follow(c.Request.Context(), c.Param("id"), req.UserID); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, "User has been followed")
	}
}

func UnfollowUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID string `json:"userId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := u.Unfollow(c.Request.Context(), c.Param("id"), req.UserID); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, "User has been unfollowed")
	}
}
