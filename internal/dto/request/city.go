package request

type CityRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	State     *string `json:"state,omitempty" validate:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active,omitempty"`
	SortOrder int     `json:"order"`
}

type CityUpdateRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	State     *string `json:"state,omitempty" validate:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active,omitempty"`
	SortOrder *int    `json:"order,omitempty"`
}
