package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tampabaymerch/backoffice/internal/config"
	"github.com/tampabaymerch/backoffice/internal/domain"
	"github.com/tampabaymerch/backoffice/internal/repository"
	"github.com/tampabaymerch/backoffice/internal/zencoder"
	"github.com/tampabaymerch/backoffice/pkg/errors"
)

const (
	placeholderImageURL = "https://via.placeholder.com/800x800/333/fff?text=Product"
	brandLogoURL        = "https://tampabaymerch.example.com/logo.png"
)

// encodingAPI is the slice of the encoding client the media service uses
type encodingAPI interface {
	CreateJob(ctx context.Context, job zencoder.JobRequest) (*zencoder.JobResponse, error)
	GetJob(ctx context.Context, jobID string) (*zencoder.JobResponse, error)
}

type mediaService struct {
	client      encodingAPI
	repos       *repository.Repositories
	callbackURL string
	logger      *zap.Logger
}

// NewMediaService creates a new media encoding service
func NewMediaService(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) *mediaService {
	return &mediaService{
		client:      zencoder.NewClient(cfg.Zencoder, logger),
		repos:       repos,
		callbackURL: fmt.Sprintf("%s/api/webhooks/zencoder/job_complete", cfg.API.BaseURL),
		logger:      logger,
	}
}

// HeroVideoRequest submits a cinematic hero video job built from images
type HeroVideoRequest struct {
	InputImages []string `json:"input_images" binding:"required,min=1"`
	AudioURL    *string  `json:"audio_url,omitempty"`
}

// SocialContentRequest submits a social-media content job
type SocialContentRequest struct {
	Assets map[string]interface{} `json:"assets"`
}

// OptimizeImagesRequest submits image optimization jobs
type OptimizeImagesRequest struct {
	ImageURLs []string `json:"image_urls" binding:"required,min=1"`
}

// CreateHeroVideo submits a 15-second cinematic hero video job. Only the
// first image is used as input; a real montage is not assembled.
func (s *mediaService) CreateHeroVideo(ctx context.Context, req HeroVideoRequest) (*domain.EncodingJob, error) {
	output := map[string]interface{}{
		"label":       "hero_video",
		"format":      "mp4",
		"video_codec": "h264",
		"quality":     5,
		"width":       1920,
		"height":      1080,
		"frame_rate":  24,
		"duration":    15,
		"public":      true,
		"watermark": map[string]interface{}{
			"url":    brandLogoURL,
			"x":      "-10",
			"y":      "-10",
			"width":  "100",
			"height": "40",
		},
	}
	if req.AudioURL != nil {
		output["audio_codec"] = "aac"
		output["audio_mix"] = *req.AudioURL
	}

	return s.submit(ctx, req.InputImages[0], "hero_video", nil, output)
}

// CreateProductVideo submits a square product showcase video for social
// feeds. Template is "sports" (default) or "premium".
func (s *mediaService) CreateProductVideo(ctx context.Context, productID, template string) (*domain.EncodingJob, error) {
	product, err := s.repos.Product.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	duration := 10
	if template == "premium" {
		duration = 15
	}

	label := fmt.Sprintf("product_video_%s", product.SKU)
	output := map[string]interface{}{
		"label":       label,
		"format":      "mp4",
		"video_codec": "h264",
		"quality":     4,
		"width":       1080,
		"height":      1080,
		"frame_rate":  30,
		"duration":    duration,
		"public":      true,
		"text_overlay": map[string]interface{}{
			"text":       product.Name,
			"font_size":  48,
			"font_color": "ffffff",
			"x":          "center",
			"y":          "bottom",
			"background": "00000080",
		},
	}

	input := placeholderImageURL
	if product.ImageURL != nil && *product.ImageURL != "" {
		input = *product.ImageURL
	}

	return s.submit(ctx, input, label, &product.ID, output)
}

// OptimizeImages submits one optimization job per image. A failed
// submission is logged and skipped; the sweep continues.
func (s *mediaService) OptimizeImages(ctx context.Context, req OptimizeImagesRequest) ([]*domain.EncodingJob, error) {
	jobs := []*domain.EncodingJob{}
	for _, imageURL := range req.ImageURLs {
		output := map[string]interface{}{
			"label":       "product_image_optimized",
			"format":      "jpg",
			"quality":     4,
			"width":       800,
			"height":      800,
			"aspect_mode": "crop",
			"public":      true,
		}
		job, err := s.submit(ctx, imageURL, "product_image_optimized", nil, output)
		if err != nil {
			s.logger.Warn("Skipping image optimization", zap.String("image_url", imageURL), zap.Error(err))
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// CreateSocialContent submits a social-media content job for a known
// content type: instagram_story, facebook_ad or youtube_short
func (s *mediaService) CreateSocialContent(ctx context.Context, contentType string, req SocialContentRequest) (*domain.EncodingJob, error) {
	configs := map[string]map[string]interface{}{
		"instagram_story": {"width": 1080, "height": 1920, "duration": 15},
		"facebook_ad":     {"width": 1200, "height": 628, "duration": 30},
		"youtube_short":   {"width": 1080, "height": 1920, "duration": 60},
	}
	preset, ok := configs[contentType]
	if !ok {
		return nil, &errors.ErrValidation{Field: "content_type", Message: fmt.Sprintf("unknown content type %q", contentType)}
	}

	label := fmt.Sprintf("marketing_%s", contentType)
	output := map[string]interface{}{
		"label":       label,
		"format":      "mp4",
		"video_codec": "h264",
		"audio_codec": "aac",
		"quality":     4,
		"public":      true,
	}
	for k, v := range preset {
		output[k] = v
	}

	input := placeholderImageURL
	if bg, ok := req.Assets["background_image"].(string); ok && bg != "" {
		input = bg
	}

	return s.submit(ctx, input, label, nil, output)
}

// GetJobStatus polls the encoding service for the live job state and
// refreshes the stored record
func (s *mediaService) GetJobStatus(ctx context.Context, id string) (*domain.EncodingJob, error) {
	job, err := s.repos.EncodingJob.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	remote, err := s.client.GetJob(ctx, job.JobID)
	if err != nil {
		return nil, &errors.ErrIntegration{Service: "zencoder", Message: err.Error()}
	}

	if remote.State != "" && remote.State != job.Status {
		job.Status = remote.State
		if err := s.repos.EncodingJob.Update(ctx, job); err != nil {
			return nil, err
		}
	}
	return job, nil
}

// HandleCompletion stores a job-completion webhook payload verbatim for
// later inspection. There is no status reconciliation loop beyond this.
func (s *mediaService) HandleCompletion(ctx context.Context, payload map[string]interface{}) (*domain.EncodingJob, error) {
	jobID := extractWebhookJobID(payload)

	if jobID != "" {
		job, err := s.repos.EncodingJob.GetByJobID(ctx, jobID)
		if err == nil {
			job.Status = "finished"
			job.Payload = payload
			if err := s.repos.EncodingJob.Update(ctx, job); err != nil {
				return nil, err
			}
			return job, nil
		}
		if _, ok := err.(*errors.ErrNotFound); !ok {
			return nil, err
		}
	}

	// Unknown job - keep the payload anyway
	job := &domain.EncodingJob{
		JobID:   jobID,
		Label:   "webhook",
		Status:  "finished",
		Payload: payload,
	}
	if err := s.repos.EncodingJob.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *mediaService) submit(ctx context.Context, input, label string, productID *string, output map[string]interface{}) (*domain.EncodingJob, error) {
	resp, err := s.client.CreateJob(ctx, zencoder.JobRequest{
		Input:   input,
		Outputs: []map[string]interface{}{output},
		Notifications: []zencoder.Notification{
			{URL: s.callbackURL, Format: "json"},
		},
	})
	if err != nil {
		return nil, &errors.ErrIntegration{Service: "zencoder", Message: err.Error()}
	}

	job := &domain.EncodingJob{
		JobID:     resp.ID.String(),
		Label:     label,
		InputURL:  input,
		ProductID: productID,
		Status:    "submitted",
	}
	if err := s.repos.EncodingJob.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func extractWebhookJobID(payload map[string]interface{}) string {
	job, ok := payload["job"].(map[string]interface{})
	if !ok {
		return ""
	}
	switch id := job["id"].(type) {
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return ""
	}
}
