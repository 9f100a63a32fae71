package entity

import "github.com/google/uuid"

type FlatStatus string

const (
	FlatAvailable FlatStatus = "available"
	FlatSold      FlatStatus = "sold"
	FlatReserved  FlatStatus = "reserved"
	FlatHold      FlatStatus = "hold"
)

type Flat struct {
	BaseNoDelete
	TowerID      uuid.UUID  `db:"tower_id"`
	FlatNumber   string     `db:"flat_number"`
	FlatType     string     `db:"flat_type"`
	FloorNumber  int        `db:"floor_number"`
	CarpetArea   *float64   `db:"carpet_area"`
	BuiltUpArea  *float64   `db:"built_up_area"`
	SuperArea    *float64   `db:"super_area"`
	Price        *float64   `db:"price"`
	PricePerSqft *float64   `db:"price_per_sqft"`
	Status       FlatStatus `db:"status"`
	Facing       string     `db:"facing"`
	Balcony      int        `db:"balcony"`
	Parking      int        `db:"parking"`
	Description  string     `db:"description"`
}
