package handlers

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"faithstories/config"
	"faithstories/helper"
	"faithstories/models"
	"faithstories/services"

	"github.com/gin-gonic/gin"
)

// PostHandler serves the public read surface: visible post lists, slug
// resolution with historical redirects, featured posts and the sitemap.
type PostHandler struct {
	postService services.PostService
	helper      helper.HTTPHelper
}

func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	var params models.PostListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts, total, err := h.postService.ListPublic(params)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	h.helper.SendList(c, posts, params.Page, params.Limit, total)
}

// GetPostBySlug resolves a slug to a post. When the slug is historical
// the response is a 301 carrying the canonical URL both as a Location
// header and as a {redirect} payload for JSON clients.
func (h *PostHandler) GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, redirect, err := h.postService.ResolveBySlug(slug)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	if redirect {
		loc := config.SiteBaseURL + "/posts/" + url.PathEscape(post.Slug)
		c.Header("Location", loc)
		c.JSON(http.StatusMovedPermanently, gin.H{"redirect": loc})
		return
	}

	h.helper.SendData(c, http.StatusOK, post)
}

func (h *PostHandler) ListFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	posts, err := h.postService.ListFeatured(limit)
	if err != nil {
		h.helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": posts, "meta": gin.H{"limit": limit}})
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap lists every published post regardless of schedule; crawlers
// may index a scheduled post's URL slightly early, which is harmless.
func (h *PostHandler) Sitemap(c *gin.Context) {
	posts, err := h.postService.ListSitemap()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate sitemap")
		return
	}

	set := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, post := range posts {
		entry := sitemapURL{
			Loc: config.SiteBaseURL + "/posts/" + url.PathEscape(post.Slug),
		}
		if post.PublishedAt != nil {
			entry.LastMod = post.PublishedAt.UTC().Format(time.RFC3339)
		} else if !post.UpdatedAt.IsZero() {
			entry.LastMod = post.UpdatedAt.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, entry)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate sitemap")
		return
	}

	c.Data(http.StatusOK, "application/xml", append([]byte(xml.Header), body...))
}
