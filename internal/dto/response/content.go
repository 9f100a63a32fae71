package response

import (
	"time"

	"realty-backend/internal/data/entity"
)

type ClientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	LogoURL   string `json:"logo_url"`
	Website   string `json:"website"`
	SortOrder int    `json:"order"`
}

type AchievementResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"order"`
}

type BlogPostResponse struct {
	ID               string    `json:"id"`
	ProjectID        *string   `json:"project_id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Excerpt          string    `json:"excerpt"`
	Content          string    `json:"content"`
	FeaturedImageURL string    `json:"featured_image_url"`
	VideoURL         string    `json:"video_url"`
	Author           string    `json:"author"`
	Category         string    `json:"category"`
	Views            int       `json:"views"`
	Published        bool      `json:"published"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ClientToResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		LogoURL:   c.LogoURL,
		Website:   c.Website,
		SortOrder: c.SortOrder,
	}
}

func AchievementToResponse(a *entity.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		SortOrder:   a.SortOrder,
	}
}

func BlogPostToResponse(p *entity.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		ID:               p.ID.String(),
		ProjectID:        uuidString(p.ProjectID),
		Title:            p.Title,
		Slug:             p.Slug,
		Excerpt:          p.Excerpt,
		Content:          p.Content,
		FeaturedImageURL: p.FeaturedImageURL,
		VideoURL:         p.VideoURL,
		Author:           p.Author,
		Category:         p.Category,
		Views:            p.Views,
		Published:        p.Published,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
