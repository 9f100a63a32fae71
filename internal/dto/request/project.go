package request

type ProjectRequest struct {
	Title              string            `json:"title" validate:"required,max=200"`
	PropertyType       string            `json:"property_type" validate:"required,oneof=residential commercial resale"`
	TransactionType    string            `json:"transaction_type,omitempty" validate:"omitempty,max=20"`
	IsHot              bool              `json:"is_hot"`
	ProjectStatus      *string           `json:"project_status,omitempty" validate:"omitempty,oneof=pre_launch new_launch new_tower_launch ready_to_move nearing_possession"`
	AvailableFlatTypes string            `json:"available_flat_types,omitempty" validate:"omitempty,max=200"`
	Location           string            `json:"location" validate:"required,max=200"`
	CityID             *string           `json:"city_id,omitempty" validate:"omitempty,uuid"`
	CityName           string            `json:"city_name,omitempty" validate:"omitempty,max=100"`
	State              string            `json:"state,omitempty" validate:"omitempty,max=100"`
	Description        string            `json:"description" validate:"required"`
	CoverImageURL      string            `json:"cover_image_url,omitempty" validate:"omitempty,max=500"`
	Price              float64           `json:"price" validate:"gte=0"`
	Featured           bool              `json:"featured"`
	IDNumber           string            `json:"id_number,omitempty" validate:"omitempty,max=50"`
	AboutListing       string            `json:"about_listing,omitempty"`
	MapLocation        string            `json:"map_location,omitempty"`
	RERANumber         string            `json:"rera_number,omitempty" validate:"omitempty,max=100"`
	LandArea           string            `json:"land_area,omitempty" validate:"omitempty,max=100"`
	AmenitiesArea      string            `json:"amenities_area,omitempty" validate:"omitempty,max=100"`
	TotalUnits         *int              `json:"total_units,omitempty" validate:"omitempty,min=0"`
	TotalTowers        *int              `json:"total_towers,omitempty" validate:"omitempty,min=0"`
	DeveloperName      string            `json:"developer_name,omitempty" validate:"omitempty,max=200"`
	Specifications     map[string]string `json:"specifications,omitempty"`
}

type ProjectUpdateRequest struct {
	Title              *string           `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	PropertyType       *string           `json:"property_type,omitempty" validate:"omitempty,oneof=residential commercial resale"`
	TransactionType    *string           `json:"transaction_type,omitempty" validate:"omitempty,max=20"`
	IsHot              *bool             `json:"is_hot,omitempty"`
	ProjectStatus      *string           `json:"project_status,omitempty" validate:"omitempty,oneof=pre_launch new_launch new_tower_launch ready_to_move nearing_possession"`
	AvailableFlatTypes *string           `json:"available_flat_types,omitempty" validate:"omitempty,max=200"`
	Location           *string           `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	CityID             *string           `json:"city_id,omitempty" validate:"omitempty,uuid"`
	CityName           *string           `json:"city_name,omitempty" validate:"omitempty,max=100"`
	State              *string           `json:"state,omitempty" validate:"omitempty,max=100"`
	Description        *string           `json:"description,omitempty"`
	CoverImageURL      *string           `json:"cover_image_url,omitempty" validate:"omitempty,max=500"`
	Price              *float64          `json:"price,omitempty" validate:"omitempty,gte=0"`
	Featured           *bool             `json:"featured,omitempty"`
	IDNumber           *string           `json:"id_number,omitempty" validate:"omitempty,max=50"`
	AboutListing       *string           `json:"about_listing,omitempty"`
	MapLocation        *string           `json:"map_location,omitempty"`
	RERANumber         *string           `json:"rera_number,omitempty" validate:"omitempty,max=100"`
	LandArea           *string           `json:"land_area,omitempty" validate:"omitempty,max=100"`
	AmenitiesArea      *string           `json:"amenities_area,omitempty" validate:"omitempty,max=100"`
	TotalUnits         *int              `json:"total_units,omitempty" validate:"omitempty,min=0"`
	TotalTowers        *int              `json:"total_towers,omitempty" validate:"omitempty,min=0"`
	DeveloperName      *string           `json:"developer_name,omitempty" validate:"omitempty,max=200"`
	Specifications     map[string]string `json:"specifications,omitempty"`
}

type ProjectImageRequest struct {
	ProjectID string `json:"project_id" validate:"required,uuid"`
	ImageURL  string `json:"image_url" validate:"required,max=500"`
	Title     string `json:"title,omitempty" validate:"omitempty,max=200"`
	Category  string `json:"category,omitempty" validate:"omitempty,oneof=inside_view outside_view floor_plan amenities location other"`
	SortOrder int    `json:"order"`
}

type ProjectImageUpdateRequest struct {
	ImageURL  *string `json:"image_url,omitempty" validate:"omitempty,min=1,max=500"`
	Title     *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Category  *string `json:"category,omitempty" validate:"omitempty,oneof=inside_view outside_view floor_plan amenities location other"`
	SortOrder *int    `json:"order,omitempty"`
}

// AmenityRequest dipakai untuk project dan tower amenity; ParentID diisi
// dari project_id atau tower_id.
type AmenityRequest struct {
	ProjectID string `json:"project_id,omitempty" validate:"omitempty,uuid"`
	TowerID   string `json:"tower_id,omitempty" validate:"omitempty,uuid"`
	Name      string `json:"name" validate:"required,max=100"`
	Icon      string `json:"icon,omitempty" validate:"omitempty,max=100"`
	SortOrder int    `json:"order"`
}

type AmenityUpdateRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Icon      *string `json:"icon,omitempty" validate:"omitempty,max=100"`
	SortOrder *int    `json:"order,omitempty"`
}

type ProjectEnquiryRequest struct {
	ProjectID string `json:"project_id" validate:"required,uuid"`
	Name      string `json:"name" validate:"required,max=200"`
	Mobile    string `json:"mobile" validate:"required"`
	Subject   string `json:"subject,omitempty" validate:"omitempty,max=200"`
	Message   string `json:"message,omitempty"`
}
