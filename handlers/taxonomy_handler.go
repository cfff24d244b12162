package handlers

import (
	"net/http"
	"strconv"

	"faithstories/helper"
	"faithstories/models"
	"faithstories/services"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	taxonomyService services.TaxonomyService
	helper          helper.HTTPHelper
}

func NewTaxonomyHandler(taxonomyService services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.taxonomyService.ListCategories()
	if err != nil {
		h.helper.SendError(c, err)
		return
	}
	h.helper.SendData(c, http.StatusOK, categories)
}

func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req models.CreateTaxonomyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.taxonomyService.CreateCategory(req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusCreated, category)
}

func (h *TaxonomyHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.taxonomyID(c)
	if !ok {
		return
	}

	var req models.UpdateTaxonomyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.taxonomyService.UpdateCategory(id, req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusOK, category)
}

func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.taxonomyID(c)
	if !ok {
		return
	}

	if err := h.taxonomyService.DeleteCategory(id); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := h.taxonomyService.ListTags()
	if err != nil {
		h.helper.SendError(c, err)
		return
	}
	h.helper.SendData(c, http.StatusOK, tags)
}

func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var req models.CreateTaxonomyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.taxonomyService.CreateTag(req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusCreated, tag)
}

func (h *TaxonomyHandler) UpdateTag(c *gin.Context) {
	id, ok := h.taxonomyID(c)
	if !ok {
		return
	}

	var req models.UpdateTaxonomyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.taxonomyService.UpdateTag(id, req)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendData(c, http.StatusOK, tag)
}

func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	id, ok := h.taxonomyID(c)
	if !ok {
		return
	}

	if err := h.taxonomyService.DeleteTag(id); err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaxonomyHandler) taxonomyID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
