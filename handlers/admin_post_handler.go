package handlers

import (
	"net/http"
	"strconv"

	"faithstories/helper"
	"faithstories/models"
	"faithstories/services"

	"github.com/gin-gonic/gin"
)

// AdminPostHandler serves the authenticated authoring surface: post
// CRUD, publish/unpublish transitions and taxonomy replacement.
type AdminPostHandler struct {
	postService services.PostService
	helper      helper.HTTPHelper
}

func NewAdminPostHandler(postService services.PostService) *AdminPostHandler {
	return &AdminPostHandler{postService: postService}
}

func (h *AdminPostHandler) CreatePost(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.CreatePost(req, userID.(uint))
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusCreated, post)
}

func (h *AdminPostHandler) ListPosts(c *gin.Context) {
	var params models.AdminPostListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts, total, err := h.postService.ListAdmin(params)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendList(c, posts, params.Page, params.Limit, total)
}

func (h *AdminPostHandler) GetPost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(id)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusOK, post)
}

func (h *AdminPostHandler) UpdatePost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.UpdatePost(id, req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusOK, post)
}

func (h *AdminPostHandler) PublishPost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	post, err := h.postService.PublishPost(id)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusOK, post)
}

func (h *AdminPostHandler) UnpublishPost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	post, err := h.postService.UnpublishPost(id)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusOK, post)
}

func (h *AdminPostHandler) DeletePost(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(id); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminPostHandler) SetCategories(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	var req models.SetCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories, err := h.postService.SetCategories(id, req.Categories)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusOK, categories)
}

func (h *AdminPostHandler) SetTags(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	var req models.SetTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags, err := h.postService.SetTags(id, req.Tags)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusOK, tags)
}

func (h *AdminPostHandler) postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return 0, false
	}
	return uint(id), true
}
