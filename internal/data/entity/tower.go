package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingOpen   BookingStatus = "booking_open"
	BookingClosed BookingStatus = "booking_closed"
	SoldOut       BookingStatus = "sold_out"
)

type Tower struct {
	BaseNoDelete
	ProjectID          uuid.UUID     `db:"project_id"`
	Name               string        `db:"name"`
	TowerNumber        string        `db:"tower_number"`
	TotalFloors        int           `db:"total_floors"`
	ParkingFloors      int           `db:"parking_floors"`
	ResidentialFloors  int           `db:"residential_floors"`
	RefugeFloors       int           `db:"refuge_floors"`
	PerFloorFlats      int           `db:"per_floor_flats"`
	TotalLifts         int           `db:"total_lifts"`
	TotalStairs        int           `db:"total_stairs"`
	StartDate          *time.Time    `db:"start_date"`
	CompletionDate     *time.Time    `db:"completion_date"`
	RERACompletionDate *time.Time    `db:"rera_completion_date"`
	RERANumber         string        `db:"rera_number"`
	BookingStatus      BookingStatus `db:"booking_status"`
	IsActive           bool          `db:"is_active"`
	SortOrder          int           `db:"sort_order"`

	// Read-only aggregates
	AvailableFlats int `db:"available_flats"`
	SoldFlats      int `db:"sold_flats"`
}

type TowerAmenity struct {
	BaseSimple
	TowerID   uuid.UUID `db:"tower_id"`
	Name      string    `db:"name"`
	Icon      string    `db:"icon"`
	SortOrder int       `db:"sort_order"`
}
