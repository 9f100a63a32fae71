package request

type ReviewRequest struct {
	CustomerName string  `json:"customer_name" validate:"required,max=100"`
	Designation  *string `json:"designation,omitempty" validate:"omitempty,max=100"`
	ReviewText   string  `json:"review_text" validate:"required"`
	Rating       *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Featured     bool    `json:"featured"`
}

type ReviewUpdateRequest struct {
	CustomerName *string `json:"customer_name,omitempty" validate:"omitempty,min=1,max=100"`
	Designation  *string `json:"designation,omitempty" validate:"omitempty,max=100"`
	ReviewText   *string `json:"review_text,omitempty" validate:"omitempty,min=1"`
	Rating       *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Featured     *bool   `json:"featured,omitempty"`
}
