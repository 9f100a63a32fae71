package response

import (
	"time"

	"realty-backend/internal/data/entity"

	"github.com/google/uuid"
)

type CityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

type ProjectResponse struct {
	ID                 string            `json:"id"`
	Title              string            `json:"title"`
	PropertyType       string            `json:"property_type"`
	TransactionType    string            `json:"transaction_type"`
	IsHot              bool              `json:"is_hot"`
	ProjectStatus      *string           `json:"project_status"`
	AvailableFlatTypes string            `json:"available_flat_types"`
	Location           string            `json:"location"`
	CityID             *string           `json:"city_id"`
	CityName           string            `json:"city_name"`
	CityNameDisplay    string            `json:"city_name_display"`
	State              string            `json:"state"`
	Description        string            `json:"description"`
	CoverImageURL      string            `json:"cover_image_url"`
	Price              float64           `json:"price"`
	Views              int               `json:"views"`
	Featured           bool              `json:"featured"`
	IDNumber           string            `json:"id_number"`
	AboutListing       string            `json:"about_listing"`
	MapLocation        string            `json:"map_location"`
	RERANumber         string            `json:"rera_number"`
	LandArea           string            `json:"land_area"`
	AmenitiesArea      string            `json:"amenities_area"`
	TotalUnits         *int              `json:"total_units"`
	TotalTowers        *int              `json:"total_towers"`
	DeveloperName      string            `json:"developer_name"`
	Specifications     map[string]string `json:"specifications"`
	TowersCount        int               `json:"towers_count"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	Images    []ProjectImageResponse `json:"images"`
	Amenities []AmenityResponse      `json:"amenities"`
	Towers    []TowerResponse        `json:"towers"`
}

type ProjectImageResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	ImageURL  string `json:"image_url"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	SortOrder int    `json:"order"`
}

// AmenityResponse serves both project and tower amenities.
type AmenityResponse struct {
	ID        string  `json:"id"`
	ProjectID *string `json:"project_id,omitempty"`
	TowerID   *string `json:"tower_id,omitempty"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	SortOrder int     `json:"order"`
}

type TowerResponse struct {
	ID                 string    `json:"id"`
	ProjectID          string    `json:"project_id"`
	Name               string    `json:"name"`
	TowerNumber        string    `json:"tower_number"`
	TotalFloors        int       `json:"total_floors"`
	ParkingFloors      int       `json:"parking_floors"`
	ResidentialFloors  int       `json:"residential_floors"`
	RefugeFloors       int       `json:"refuge_floors"`
	PerFloorFlats      int       `json:"per_floor_flats"`
	TotalLifts         int       `json:"total_lifts"`
	TotalStairs        int       `json:"total_stairs"`
	StartDate          *string   `json:"start_date"`
	CompletionDate     *string   `json:"completion_date"`
	RERACompletionDate *string   `json:"rera_completion_date"`
	RERANumber         string    `json:"rera_number"`
	BookingStatus      string    `json:"booking_status"`
	IsActive           bool      `json:"is_active"`
	SortOrder          int       `json:"order"`
	AvailableFlats     int       `json:"available_flats_count"`
	SoldFlats          int       `json:"sold_flats_count"`
	CreatedAt          time.Time `json:"created_at"`
}

type TowerDetailResponse struct {
	TowerResponse
	Flats     []FlatResponse    `json:"flats"`
	Amenities []AmenityResponse `json:"amenities"`
}

type FlatResponse struct {
	ID           string   `json:"id"`
	TowerID      string   `json:"tower_id"`
	FlatNumber   string   `json:"flat_number"`
	FlatType     string   `json:"flat_type"`
	FloorNumber  int      `json:"floor_number"`
	CarpetArea   *float64 `json:"carpet_area"`
	BuiltUpArea  *float64 `json:"built_up_area"`
	SuperArea    *float64 `json:"super_area"`
	Price        *float64 `json:"price"`
	PricePerSqft *float64 `json:"price_per_sqft"`
	Status       string   `json:"status"`
	Facing       string   `json:"facing"`
	Balcony      int      `json:"balcony"`
	Parking      int      `json:"parking"`
	Description  string   `json:"description"`
}

func CityToResponse(c *entity.City) CityResponse {
	return CityResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		State:     c.State,
		IsActive:  c.IsActive,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
	}
}

func ProjectToResponse(p *entity.Project) ProjectResponse {
	var status *string
	if p.ProjectStatus != nil {
		s := string(*p.ProjectStatus)
		status = &s
	}
	specs := p.Specifications
	if specs == nil {
		specs = map[string]string{}
	}
	return ProjectResponse{
		ID:                 p.ID.String(),
		Title:              p.Title,
		PropertyType:       string(p.PropertyType),
		TransactionType:    p.TransactionType,
		IsHot:              p.IsHot,
		ProjectStatus:      status,
		AvailableFlatTypes: p.AvailableFlatTypes,
		Location:           p.Location,
		CityID:             uuidString(p.CityID),
		CityName:           p.CityName,
		CityNameDisplay:    p.DisplayCity(),
		State:              p.State,
		Description:        p.Description,
		CoverImageURL:      p.CoverImageURL,
		Price:              p.Price,
		Views:              p.Views,
		Featured:           p.Featured,
		IDNumber:           p.IDNumber,
		AboutListing:       p.AboutListing,
		MapLocation:        p.MapLocation,
		RERANumber:         p.RERANumber,
		LandArea:           p.LandArea,
		AmenitiesArea:      p.AmenitiesArea,
		TotalUnits:         p.TotalUnits,
		TotalTowers:        p.TotalTowers,
		DeveloperName:      p.DeveloperName,
		Specifications:     specs,
		TowersCount:        p.TowersCount,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func ProjectImageToResponse(img *entity.ProjectImage) ProjectImageResponse {
	return ProjectImageResponse{
		ID:        img.ID.String(),
		ProjectID: img.ProjectID.String(),
		ImageURL:  img.ImageURL,
		Title:     img.Title,
		Category:  img.Category,
		SortOrder: img.SortOrder,
	}
}

func ProjectAmenityToResponse(a *entity.ProjectAmenity) AmenityResponse {
	return AmenityResponse{
		ID:        a.ID.String(),
		ProjectID: uuidString(&a.ProjectID),
		Name:      a.Name,
		Icon:      a.Icon,
		SortOrder: a.SortOrder,
	}
}

func TowerAmenityToResponse(a *entity.TowerAmenity) AmenityResponse {
	return AmenityResponse{
		ID:        a.ID.String(),
		TowerID:   uuidString(&a.TowerID),
		Name:      a.Name,
		Icon:      a.Icon,
		SortOrder: a.SortOrder,
	}
}

func TowerToResponse(t *entity.Tower) TowerResponse {
	return TowerResponse{
		ID:                 t.ID.String(),
		ProjectID:          t.ProjectID.String(),
		Name:               t.Name,
		TowerNumber:        t.TowerNumber,
		TotalFloors:        t.TotalFloors,
		ParkingFloors:      t.ParkingFloors,
		ResidentialFloors:  t.ResidentialFloors,
		RefugeFloors:       t.RefugeFloors,
		PerFloorFlats:      t.PerFloorFlats,
		TotalLifts:         t.TotalLifts,
		TotalStairs:        t.TotalStairs,
		StartDate:          dateString(t.StartDate),
		CompletionDate:     dateString(t.CompletionDate),
		RERACompletionDate: dateString(t.RERACompletionDate),
		RERANumber:         t.RERANumber,
		BookingStatus:      string(t.BookingStatus),
		IsActive:           t.IsActive,
		SortOrder:          t.SortOrder,
		AvailableFlats:     t.AvailableFlats,
		SoldFlats:          t.SoldFlats,
		CreatedAt:          t.CreatedAt,
	}
}

func FlatToResponse(f *entity.Flat) FlatResponse {
	return FlatResponse{
		ID:           f.ID.String(),
		TowerID:      f.TowerID.String(),
		FlatNumber:   f.FlatNumber,
		FlatType:     f.FlatType,
		FloorNumber:  f.FloorNumber,
		CarpetArea:   f.CarpetArea,
		BuiltUpArea:  f.BuiltUpArea,
		SuperArea:    f.SuperArea,
		Price:        f.Price,
		PricePerSqft: f.PricePerSqft,
		Status:       string(f.Status),
		Facing:       f.Facing,
		Balcony:      f.Balcony,
		Parking:      f.Parking,
		Description:  f.Description,
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
