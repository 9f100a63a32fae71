package entity

import "github.com/google/uuid"

type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyResale      PropertyType = "resale"
)

type ProjectStatus string

const (
	StatusPreLaunch         ProjectStatus = "pre_launch"
	StatusNewLaunch         ProjectStatus = "new_launch"
	StatusNewTowerLaunch    ProjectStatus = "new_tower_launch"
	StatusReadyToMove       ProjectStatus = "ready_to_move"
	StatusNearingPossession ProjectStatus = "nearing_possession"
)

type Project struct {
	BaseNoDelete
	Title              string            `db:"title"`
	PropertyType       PropertyType      `db:"property_type"`
	TransactionType    string            `db:"transaction_type"`
	IsHot              bool              `db:"is_hot"`
	ProjectStatus      *ProjectStatus    `db:"project_status"`
	AvailableFlatTypes string            `db:"available_flat_types"`
	Location           string            `db:"location"`
	CityID             *uuid.UUID        `db:"city_id"`
	CityName           string            `db:"city_name"`
	State              string            `db:"state"`
	Description        string            `db:"description"`
	CoverImageURL      string            `db:"cover_image_url"`
	Price              float64           `db:"price"`
	Views              int               `db:"views"`
	Featured           bool              `db:"featured"`
	IDNumber           string            `db:"id_number"`
	AboutListing       string            `db:"about_listing"`
	MapLocation        string            `db:"map_location"`
	RERANumber         string            `db:"rera_number"`
	LandArea           string            `db:"land_area"`
	AmenitiesArea      string            `db:"amenities_area"`
	TotalUnits         *int              `db:"total_units"`
	TotalTowers        *int              `db:"total_towers"`
	DeveloperName      string            `db:"developer_name"`
	Specifications     map[string]string `db:"specifications"`

	// Read-only, filled by joins
	CityDisplayName *string `db:"city_display_name"`
	TowersCount     int     `db:"towers_count"`
}

// DisplayCity prefers the linked city over the free text fallback.
func (p *Project) DisplayCity() string {
	if p.CityDisplayName != nil && *p.CityDisplayName != "" {
		return *p.CityDisplayName
	}
	return p.CityName
}

type ProjectImage struct {
	BaseSimple
	ProjectID uuid.UUID `db:"project_id"`
	ImageURL  string    `db:"image_url"`
	Title     string    `db:"title"`
	Category  string    `db:"category"`
	SortOrder int       `db:"sort_order"`
}

type ProjectAmenity struct {
	BaseSimple
	ProjectID uuid.UUID `db:"project_id"`
	Name      string    `db:"name"`
	Icon      string    `db:"icon"`
	SortOrder int       `db:"sort_order"`
}
