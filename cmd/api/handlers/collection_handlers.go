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

// ListCollectionsHandler godoc
// @Summary      List collections
// @Description  List collections newest first; published=true narrows to published ones
// @Tags         collections
// @Param        published  query  bool  false  "Published only"
// @Produce      json
// @Success      200  {array}  dto.CollectionDTO
// @Router       /collections [get]
func ListCollectionsHandler(svc *services.CollectionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cols, err := svc.List(c.Request.Context(), c.Query("published") == "true")
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cols)
	}
}

// GetCollectionHandler godoc
// @Summary      Get collection by slug
// @Description  Returns the collection with referenced prompts resolved, incrementing views
// @Tags         collections
// @Param        slug   path   string  true  "Slug"
// @Produce      json
// @Success      200  {object}  dto.CollectionDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /collections/{slug} [get]
func GetCollectionHandler(svc *services.CollectionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		col, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, col)
	}
}

// IncrementDownloadsHandler godoc
// @Summary      Increment collection downloads
// @Tags         collections
// @Param        slug   path   string  true  "Slug"
// @Produce      json
// @Success      200  {object}  dto.DownloadCountResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /collections/{slug}/download [post]
func IncrementDownloadsHandler(svc *services.CollectionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.IncrementDownloads(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"downloads": count})
	}
}

// CreateCollectionHandler godoc
// @Summary      Create collection (admin)
// @Description  Multipart create: collection fields, prompt id list, one cover image
// @Tags         collections
// @Security     AdminKey
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.CollectionDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /collections [post]
func CreateCollectionHandler(svc *services.CollectionService, up *uploader.Uploader) gin.HandlerFunc {
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
			"title":       c.PostForm("title"),
			"description": c.PostForm("description"),
			"category":    c.PostForm("category"),
		}
		if err := services.ValidateCreateCollection(rec); err != nil {
			respondError(c, err)
			return
		}

		promptIDs, err := services.ParsePromptIDs(c.PostForm("prompts"))
		if err != nil {
			respondError(c, err)
			return
		}

		url, err := up.Upload(c.Request.Context(), fh, "image")
		if err != nil {
			respondError(c, err)
			return
		}

		col, err := svc.Create(c.Request.Context(), services.CreateCollectionInput{
			Title:       c.PostForm("title"),
			Description: c.PostForm("description"),
			CoverImage:  url,
			Prompts:     promptIDs,
			Category:    c.PostForm("category"),
			IsPublished: c.PostForm("isPublished") == "true",
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, col)
	}
}

// DeleteCollectionHandler godoc
// @Summary      Delete collection (admin)
// @Tags         collections
// @Security     AdminKey
// @Param        slug   path   string  true  "Slug"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /collections/{slug} [delete]
func DeleteCollectionHandler(svc *services.CollectionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("slug")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "collection deleted"})
	}
}
