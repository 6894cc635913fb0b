package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/sociogram/internal/services"
)

func CreatePost(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID string `json:"userId"`
			Desc   string `json:"desc"`
			Img    string `json:"img"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		post, err := p.CreatePost(c.Request.Context(), req.UserID, req.Desc, req.Img)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, post)
	}
}

func UpdatePost(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		requesterId, _ := body["userId"].(string)

		if err := p.UpdatePost(c.Request.Context(), c.Param("id"), requesterId, body); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, "Post updated successfully")
	}
}

func DeletePost(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID string `json:"userId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := p.DeletePost(c.Request.Context(), c.Param("id"), req.UserID); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, "Post deleted successfully")
	}
}

func LikePost(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID string `json:"userId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		message, err := p.ToggleLike(c.Request.Context(), c.Param("id"), req.UserID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, message)
	}
}

func GetPost(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := p.GetPost(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, post)
	}
}

// GetTimeline reads the requester id from the request body, GET verb
// notwithstanding. The reference contract works that way.
func GetTimeline(p *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserID string `json:"userId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		timeline, err := p.Timeline(c.Request.Context(), req.UserID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, timeline)
	}
}
