package response

import (
	"time"

	"realty-backend/internal/data/entity"
)

type ReviewResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Designation  string    `json:"designation"`
	ReviewText   string    `json:"review_text"`
	Rating       int       `json:"rating"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// Helper converter
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID.String(),
		CustomerName: review.CustomerName,
		Designation:  review.Designation,
		ReviewText:   review.ReviewText,
		Rating:       review.Rating,
		Featured:     review.Featured,
		CreatedAt:    review.CreatedAt,
	}
}
