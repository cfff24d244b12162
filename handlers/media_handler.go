package handlers

import (
	"net/http"

	"faithstories/helper"
	"faithstories/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService services.MediaService
	helper       helper.HTTPHelper
}

func NewMediaHandler(mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	userID, _ := c.Get("user_id")

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}

	media, err := h.mediaService.SaveUpload(file, userID.(uint))
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusCreated, media)
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	media, err := h.mediaService.ListMedia()
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusOK, media)
}
