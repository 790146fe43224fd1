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

// ListPromptsHandler godoc
// @Summary      List prompts
// @Description  List prompts, newest first, with optional additive filters
// @Tags         prompts
// @Param        model     query  string  false  "AI model filter"
// @Param        industry  query  string  false  "Industry filter"
// @Param        topic     query  string  false  "Topic filter"
// @Param        trending  query  bool    false  "Trending only"
// @Produce      json
// @Success      200  {array}  dto.PromptDTO
// @Router       /prompts [get]
func ListPromptsHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.ListPromptsInput{
			AIModel:      c.Query("model"),
			Industry:     c.Query("industry"),
			Topic:        c.Query("topic"),
			TrendingOnly: c.Query("trending") == "true",
		}
		prompts, err := svc.List(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, prompts)
	}
}

// PromptOfTheDayHandler godoc
// @Summary      Prompt of the day
// @Description  Returns the flagged prompt, else the newest trending prompt, else the newest prompt
// @Tags         prompts
// @Produce      json
// @Success      200  {object}  dto.PromptDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /prompts/prompt-of-the-day [get]
func PromptOfTheDayHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.PromptOfTheDay(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// GetPromptHandler godoc
// @Summary      Get prompt by id
// @Tags         prompts
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PromptDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /prompts/{id} [get]
func GetPromptHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// IncrementCopyCountHandler godoc
// @Summary      Increment prompt copy count
// @Description  Adds one to copy_count and returns the new value
// @Tags         prompts
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.CopyCountResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /prompts/{id}/copy [post]
func IncrementCopyCountHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.IncrementCopyCount(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"copy_count": count})
	}
}

// CreatePromptHandler godoc
// @Summary      Create prompt (admin)
// @Description  Multipart create: prompt fields plus one media file
// @Tags         prompts
// @Security     AdminKey
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.PromptDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /prompts [post]
func CreatePromptHandler(svc *services.PromptService, up *uploader.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The media file is required; its absence fails before field
		// validation.
		fh, err := uploader.FileFromForm(c, "media")
		if err != nil {
			if errors.Is(err, uploader.ErrFileRequired) {
				respondError(c, errs.NewBadRequestError("media file is required"))
				return
			}
			respondError(c, err)
			return
		}

		rec := validation.Record{
			"title":       c.PostForm("title"),
			"description": c.PostForm("description"),
			"promptText":  c.PostForm("promptText"),
			"aiModel":     c.PostForm("aiModel"),
			"industry":    c.PostForm("industry"),
			"topic":       c.PostForm("topic"),
			"mediaType":   c.PostForm("mediaType"),
		}
		if err := services.ValidateCreatePrompt(rec); err != nil {
			respondError(c, err)
			return
		}

		mediaType := c.PostForm("mediaType")
		url, err := up.Upload(c.Request.Context(), fh, mediaType)
		if err != nil {
			respondError(c, err)
			return
		}

		p, err := svc.Create(c.Request.Context(), services.CreatePromptInput{
			Title:          c.PostForm("title"),
			Description:    c.PostForm("description"),
			PromptText:     c.PostForm("promptText"),
			NegativePrompt: c.PostForm("negativePrompt"),
			AIModel:        c.PostForm("aiModel"),
			Industry:       c.PostForm("industry"),
			Topic:          c.PostForm("topic"),
			MediaType:      mediaType,
			MediaURL:       url,
			IsTrending:     c.PostForm("isTrending") == "true",
			IsPromptOfDay:  c.PostForm("isPromptOfDay") == "true",
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// DeletePromptHandler godoc
// @Summary      Delete prompt (admin)
// @Tags         prompts
// @Security     AdminKey
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /prompts/{id} [delete]
func DeletePromptHandler(svc *services.PromptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "prompt deleted"})
	}
}
