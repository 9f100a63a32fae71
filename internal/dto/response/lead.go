package response

import (
	"time"

	"realty-backend/internal/data/entity"
)

type ContactResponse struct {
	ID           string    `json:"id"`
	ProjectID    *string   `json:"project_id"`
	ProjectTitle *string   `json:"project_title"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Subject      string    `json:"subject"`
	Message      string    `json:"message"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}

type LeadStatsResponse struct {
	Today     int64 `json:"today"`
	Yesterday int64 `json:"yesterday"`
	LastWeek  int64 `json:"last_week"`
	LastMonth int64 `json:"last_month"`
	Total     int64 `json:"total"`
	Unread    int64 `json:"unread"`
}

type ProjectEnquiryResponse struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	IdentityID *string   `json:"identity_id"`
	Name       string    `json:"name"`
	Mobile     string    `json:"mobile"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func ContactToResponse(c *entity.Contact) ContactResponse {
	return ContactResponse{
		ID:           c.ID.String(),
		ProjectID:    uuidString(c.ProjectID),
		ProjectTitle: c.ProjectTitle,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Subject:      c.Subject,
		Message:      c.Message,
		Read:         c.Read,
		CreatedAt:    c.CreatedAt,
	}
}

func LeadStatsToResponse(s *entity.LeadStats) LeadStatsResponse {
	return LeadStatsResponse{
		Today:     s.Today,
		Yesterday: s.Yesterday,
		LastWeek:  s.LastWeek,
		LastMonth: s.LastMonth,
		Total:     s.Total,
		Unread:    s.Unread,
	}
}

func EnquiryToResponse(e *entity.ProjectEnquiry) ProjectEnquiryResponse {
	return ProjectEnquiryResponse{
		ID:         e.ID.String(),
		ProjectID:  e.ProjectID.String(),
		IdentityID: uuidString(e.IdentityID),
		Name:       e.Name,
		Mobile:     e.Mobile,
		Subject:    e.Subject,
		Message:    e.Message,
		CreatedAt:  e.CreatedAt,
	}
}
