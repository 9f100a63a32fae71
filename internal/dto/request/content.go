package request

type ClientRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	LogoURL   string `json:"logo_url" validate:"required,max=500"`
	Website   string `json:"website,omitempty" validate:"omitempty,url"`
	SortOrder int    `json:"order"`
}

type ClientUpdateRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	LogoURL   *string `json:"logo_url,omitempty" validate:"omitempty,min=1,max=500"`
	Website   *string `json:"website,omitempty" validate:"omitempty,url"`
	SortOrder *int    `json:"order,omitempty"`
}

type AchievementRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url" validate:"required,max=500"`
	SortOrder   int    `json:"order"`
}

type AchievementUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,min=1,max=500"`
	SortOrder   *int    `json:"order,omitempty"`
}

type BlogPostRequest struct {
	ProjectID        *string `json:"project_id,omitempty" validate:"omitempty,uuid"`
	Title            string  `json:"title" validate:"required,max=200"`
	Slug             string  `json:"slug,omitempty" validate:"omitempty,max=200"`
	Excerpt          string  `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content          string  `json:"content" validate:"required"`
	FeaturedImageURL string  `json:"featured_image_url,omitempty" validate:"omitempty,max=500"`
	VideoURL         string  `json:"video_url,omitempty" validate:"omitempty,url"`
	Author           string  `json:"author,omitempty" validate:"omitempty,max=100"`
	Category         string  `json:"category,omitempty" validate:"omitempty,max=50"`
	Published        *bool   `json:"published,omitempty"`
}

type BlogPostUpdateRequest struct {
	ProjectID        *string `json:"project_id,omitempty" validate:"omitempty,uuid"`
	Title            *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Slug             *string `json:"slug,omitempty" validate:"omitempty,min=1,max=200"`
	Excerpt          *string `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content          *string `json:"content,omitempty" validate:"omitempty,min=1"`
	FeaturedImageURL *string `json:"featured_image_url,omitempty" validate:"omitempty,max=500"`
	VideoURL         *string `json:"video_url,omitempty" validate:"omitempty,url"`
	Author           *string `json:"author,omitempty" validate:"omitempty,max=100"`
	Category         *string `json:"category,omitempty" validate:"omitempty,max=50"`
	Published        *bool   `json:"published,omitempty"`
}

type ContactRequest struct {
	ProjectID *string `json:"project_id,omitempty" validate:"omitempty,uuid"`
	Name      string  `json:"name" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"required,max=20"`
	Subject   string  `json:"subject" validate:"required,max=200"`
	Message   string  `json:"message" validate:"required"`
}

type ContactUpdateRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=1,max=20"`
	Subject *string `json:"subject,omitempty" validate:"omitempty,min=1,max=200"`
	Message *string `json:"message,omitempty" validate:"omitempty,min=1"`
	Read    *bool   `json:"read,omitempty"`
}
