package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptvault/cmd/api/services"
	"promptvault/cmd/api/uploader"
	"promptvault/errs"
	"promptvault/validation"
)

// ListBlogsHandler godoc
// @Summary      List blogs
// @Description  List blogs newest first; published=true narrows to published posts
// @Tags         blogs
// @Param        published  query  bool  false  "Published only"
// @Produce      json
// @Success      200  {array}  dto.BlogDTO
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := svc.List(c.Request.Context(), c.Query("published") == "true")
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blogs)
	}
}

// GetBlogHandler godoc
// @Summary      Get blog by slug
// @Description  Returns the blog and increments its views counter
// @Tags         blogs
// @Param        slug   path   string  true  "Slug"
// @Produce      json
// @Success      200  {object}  dto.BlogDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{slug} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// CreateBlogHandler godoc
// @Summary      Create blog (admin)
// @Description  Multipart create: blog fields plus one cover image
// @Tags         blogs
// @Security     AdminKey
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.BlogDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /blogs [post]
func CreateBlogHandler(svc *services.BlogService, up *uploader.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := uploader.FileFromForm(c, "coverImage")
		if err != nil {
			if errors.Is(err, uploader.ErrFileRequired) {
				respondError(c, errs.NewBadRequestError("cover image file is required"))
				return
			}
			respondError(c, err)
			return
		}

		rec := validation.Record{
			"title":    c.PostForm("title"),
			"excerpt":  c.PostForm("excerpt"),
			"content":  c.PostForm("content"),
			"category": c.PostForm("category"),
		}
		if err := services.ValidateCreateBlog(rec); err != nil {
			respondError(c, err)
			return
		}

		url, err := up.Upload(c.Request.Context(), fh, "image")
		if err != nil {
			respondError(c, err)
			return
		}

		b, err := svc.Create(c.Request.Context(), services.CreateBlogInput{
			Title:       c.PostForm("title"),
			Slug:        c.PostForm("slug"),
			Excerpt:     c.PostForm("excerpt"),
			Content:     c.PostForm("content"),
			CoverImage:  url,
			Author:      c.PostForm("author"),
			Category:    c.PostForm("category"),
			Tags:        services.SplitTags(c.PostForm("tags")),
			IsPublished: c.PostForm("isPublished") == "true",
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete blog (admin)
// @Tags         blogs
// @Security     AdminKey
// @Param        slug   path   string  true  "Slug"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{slug} [delete]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("slug")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "blog deleted"})
	}
}
