package request

type TowerRequest struct {
	ProjectID          string  `json:"project_id" validate:"required,uuid"`
	Name               string  `json:"name" validate:"required,max=100"`
	TowerNumber        string  `json:"tower_number,omitempty" validate:"omitempty,max=20"`
	TotalFloors        int     `json:"total_floors" validate:"min=0"`
	ParkingFloors      int     `json:"parking_floors" validate:"min=0"`
	ResidentialFloors  int     `json:"residential_floors" validate:"min=0"`
	RefugeFloors       int     `json:"refuge_floors" validate:"min=0"`
	PerFloorFlats      int     `json:"per_floor_flats" validate:"min=0"`
	TotalLifts         int     `json:"total_lifts" validate:"min=0"`
	TotalStairs        int     `json:"total_stairs" validate:"min=0"`
	StartDate          *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CompletionDate     *string `json:"completion_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RERACompletionDate *string `json:"rera_completion_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RERANumber         string  `json:"rera_number,omitempty" validate:"omitempty,max=100"`
	BookingStatus      string  `json:"booking_status,omitempty" validate:"omitempty,oneof=booking_open booking_closed sold_out"`
	IsActive           *bool   `json:"is_active,omitempty"`
	SortOrder          int     `json:"order"`
}

type TowerUpdateRequest struct {
	Name               *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TowerNumber        *string `json:"tower_number,omitempty" validate:"omitempty,max=20"`
	TotalFloors        *int    `json:"total_floors,omitempty" validate:"omitempty,min=0"`
	ParkingFloors      *int    `json:"parking_floors,omitempty" validate:"omitempty,min=0"`
	ResidentialFloors  *int    `json:"residential_floors,omitempty" validate:"omitempty,min=0"`
	RefugeFloors       *int    `json:"refuge_floors,omitempty" validate:"omitempty,min=0"`
	PerFloorFlats      *int    `json:"per_floor_flats,omitempty" validate:"omitempty,min=0"`
	TotalLifts         *int    `json:"total_lifts,omitempty" validate:"omitempty,min=0"`
	TotalStairs        *int    `json:"total_stairs,omitempty" validate:"omitempty,min=0"`
	StartDate          *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CompletionDate     *string `json:"completion_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RERACompletionDate *string `json:"rera_completion_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RERANumber         *string `json:"rera_number,omitempty" validate:"omitempty,max=100"`
	BookingStatus      *string `json:"booking_status,omitempty" validate:"omitempty,oneof=booking_open booking_closed sold_out"`
	IsActive           *bool   `json:"is_active,omitempty"`
	SortOrder          *int    `json:"order,omitempty"`
}

type FlatRequest struct {
	TowerID      string   `json:"tower_id" validate:"required,uuid"`
	FlatNumber   string   `json:"flat_number" validate:"required,max=20"`
	FlatType     string   `json:"flat_type" validate:"required,oneof=1bhk 1.5bhk 2bhk 2.5bhk 3bhk 3.5bhk 4bhk 4.5bhk 5bhk 5.5bhk"`
	FloorNumber  int      `json:"floor_number" validate:"min=0"`
	CarpetArea   *float64 `json:"carpet_area,omitempty" validate:"omitempty,gte=0"`
	BuiltUpArea  *float64 `json:"built_up_area,omitempty" validate:"omitempty,gte=0"`
	SuperArea    *float64 `json:"super_area,omitempty" validate:"omitempty,gte=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	PricePerSqft *float64 `json:"price_per_sqft,omitempty" validate:"omitempty,gte=0"`
	Status       string   `json:"status,omitempty" validate:"omitempty,oneof=available sold reserved hold"`
	Facing       string   `json:"facing,omitempty" validate:"omitempty,max=50"`
	Balcony      int      `json:"balcony" validate:"min=0"`
	Parking      int      `json:"parking" validate:"min=0"`
	Description  string   `json:"description,omitempty"`
}

type FlatUpdateRequest struct {
	FlatNumber   *string  `json:"flat_number,omitempty" validate:"omitempty,min=1,max=20"`
	FlatType     *string  `json:"flat_type,omitempty" validate:"omitempty,oneof=1bhk 1.5bhk 2bhk 2.5bhk 3bhk 3.5bhk 4bhk 4.5bhk 5bhk 5.5bhk"`
	FloorNumber  *int     `json:"floor_number,omitempty" validate:"omitempty,min=0"`
	CarpetArea   *float64 `json:"carpet_area,omitempty" validate:"omitempty,gte=0"`
	BuiltUpArea  *float64 `json:"built_up_area,omitempty" validate:"omitempty,gte=0"`
	SuperArea    *float64 `json:"super_area,omitempty" validate:"omitempty,gte=0"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	PricePerSqft *float64 `json:"price_per_sqft,omitempty" validate:"omitempty,gte=0"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=available sold reserved hold"`
	Facing       *string  `json:"facing,omitempty" validate:"omitempty,max=50"`
	Balcony      *int     `json:"balcony,omitempty" validate:"omitempty,min=0"`
	Parking      *int     `json:"parking,omitempty" validate:"omitempty,min=0"`
	Description  *string  `json:"description,omitempty"`
}
