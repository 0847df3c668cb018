package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"pathfinder_backend/internal/model"
	"pathfinder_backend/internal/service"
	"pathfinder_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BlogController struct {
	BlogService *service.BlogService
}

func NewBlogController(blogService *service.BlogService) *BlogController {
	return &BlogController{BlogService: blogService}
}

// List godoc
// @Summary List published posts
// @Tags blog
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/blog [get]
func (c *BlogController) List(ctx *gin.Context) {
	page, limit := pagination(ctx)
	posts, total, err := c.BlogService.ListPublished(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: posts, Total: total, Page: page, Limit: limit})
}

// ListFeatured godoc
// @Summary List featured posts
// @Tags blog
// @Produce json
// @Success 200 {object} util.Response{data=[]model.BlogPost}
// @Router /api/blog/featured [get]
func (c *BlogController) ListFeatured(ctx *gin.Context) {
	posts, err := c.BlogService.ListFeatured(6)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, posts)
}

// Get godoc
// @Summary Get a post by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} util.Response{data=model.BlogPost}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/blog/{slug} [get]
func (c *BlogController) Get(ctx *gin.Context) {
	post, err := c.BlogService.GetBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, post)
}

// ListByCategory godoc
// @Summary List published posts in a category
// @Tags blog
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/blog/category/{category} [get]
func (c *BlogController) ListByCategory(ctx *gin.Context) {
	page, limit := pagination(ctx)
	posts, total, err := c.BlogService.ListByCategory(ctx.Param("category"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: posts, Total: total, Page: page, Limit: limit})
}

// Search godoc
// @Summary Search published posts
// @Tags blog
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/blog/search [get]
func (c *BlogController) Search(ctx *gin.Context) {
	term := ctx.Query("q")
	if term == "" {
		util.BadRequest(ctx, "query parameter q is required")
		return
	}
	page, limit := pagination(ctx)
	posts, total, err := c.BlogService.Search(term, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: posts, Total: total, Page: page, Limit: limit})
}

// Categories godoc
// @Summary List categories with published posts
// @Tags blog
// @Produce json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/blog/categories [get]
func (c *BlogController) Categories(ctx *gin.Context) {
	categories, err := c.BlogService.Categories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// Admin surface

// swagger:model BlogPostRequest
type BlogPostRequest struct {
	Title         string   `json:"title" binding:"required"`
	Slug          string   `json:"slug"`
	Content       string   `json:"content" binding:"required"`
	Excerpt       string   `json:"excerpt" binding:"required"`
	Author        string   `json:"author"`
	Category      string   `json:"category"`
	FeaturedImage string   `json:"featuredImage"`
	Tags          []string `json:"tags"`
	Featured      bool     `json:"featured"`
	IsPublished   bool     `json:"isPublished"`
}

func (r *BlogPostRequest) apply(post *model.BlogPost) error {
	post.Title = r.Title
	post.Slug = r.Slug
	post.Content = r.Content
	post.Excerpt = r.Excerpt
	if r.Author != "" {
		post.Author = r.Author
	}
	if r.Category != "" {
		post.Category = r.Category
	}
	post.FeaturedImage = r.FeaturedImage
	post.Featured = r.Featured
	post.IsPublished = r.IsPublished
	if r.Tags != nil {
		tags, err := json.Marshal(r.Tags)
		if err != nil {
			return err
		}
		post.Tags = tags
	}
	return nil
}

// AdminList godoc
// @Summary List all posts including drafts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/blog [get]
func (c *BlogController) AdminList(ctx *gin.Context) {
	page, limit := pagination(ctx)
	posts, total, err := c.BlogService.ListAll(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: posts, Total: total, Page: page, Limit: limit})
}

// Create godoc
// @Summary Create a post
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body BlogPostRequest true "Post"
// @Success 201 {object} util.Response{data=model.BlogPost}
// @Failure 409 {object} util.Response "Slug already exists"
// @Router /api/admin/blog [post]
func (c *BlogController) Create(ctx *gin.Context) {
	var req BlogPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var post model.BlogPost
	if err := req.apply(&post); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.BlogService.Create(&post); err != nil {
		if errors.Is(err, util.ErrSlugTaken) {
			util.Error(ctx, http.StatusConflict, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, post)
}

// Update godoc
// @Summary Update a post
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post id"
// @Param body body BlogPostRequest true "Post"
// @Success 200 {object} util.Response{data=model.BlogPost}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/blog/{id} [put]
func (c *BlogController) Update(ctx *gin.Context) {
	post, err := c.BlogService.GetByID(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	var req BlogPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := req.apply(post); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.BlogService.Update(post); err != nil {
		if errors.Is(err, util.ErrSlugTaken) {
			util.Error(ctx, http.StatusConflict, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, post)
}

// Delete godoc
// @Summary Delete a post
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Not found"
// @Router /api/admin/blog/{id} [delete]
func (c *BlogController) Delete(ctx *gin.Context) {
	if err := c.BlogService.Delete(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrPostNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// UploadAttachment godoc
// @Summary Upload a post attachment
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "Attachment (image or PDF)"
// @Success 201 {object} util.Response{data=model.BlogAttachment}
// @Failure 400 {object} util.Response "Invalid file"
// @Router /api/admin/blog/attachments [post]
func (c *BlogController) UploadAttachment(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	attachment, err := c.BlogService.UploadAttachment(ctx.Request.Context(), header)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, attachment)
}
