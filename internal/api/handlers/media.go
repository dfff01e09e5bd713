package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/config"
	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/internal/service"
)

// HandleCreateHeroVideo handles POST /api/media/hero-video
func HandleCreateHeroVideo(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.HeroVideoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		mediaService := service.NewMediaService(cfg, repos, logger)
		job, err := mediaService.CreateHeroVideo(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, job)
	}
}

// HandleCreateProductVideo handles POST /api/media/products/:id/video
func HandleCreateProductVideo(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		template := c.DefaultQuery("template", "sports")

		mediaService := service.NewMediaService(cfg, repos, logger)
		job, err := mediaService.CreateProductVideo(c.Request.Context(), c.Param("id"), template)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, job)
	}
}

// HandleOptimizeImages handles POST /api/media/images/optimize
func HandleOptimizeImages(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.OptimizeImagesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		mediaService := service.NewMediaService(cfg, repos, logger)
		jobs, err := mediaService.OptimizeImages(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"jobs": jobs})
	}
}

// HandleCreateSocialContent handles POST /api/media/social/:content_type
func HandleCreateSocialContent(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SocialContentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		mediaService := service.NewMediaService(cfg, repos, logger)
		job, err := mediaService.CreateSocialContent(c.Request.Context(), c.Param("content_type"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, job)
	}
}

// HandleListEncodingJobs handles GET /api/media/jobs, newest first
func HandleListEncodingJobs(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobs, err := repos.EncodingJob.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, jobs)
	}
}

// HandleGetEncodingJob handles GET /api/media/jobs/:id with a live status
// poll against the encoding service
func HandleGetEncodingJob(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		mediaService := service.NewMediaService(cfg, repos, logger)
		job, err := mediaService.GetJobStatus(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, job)
	}
}
