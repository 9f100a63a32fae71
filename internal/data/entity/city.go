package entity

type City struct {
	BaseNoDelete
	Name      string `db:"name"`
	State     string `db:"state"`
	IsActive  bool   `db:"is_active"`
	SortOrder int    `db:"sort_order"`
}
