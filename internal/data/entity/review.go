package entity

// Review is a customer testimonial shown on the site.
type Review struct {
	BaseSimple
	CustomerName string `db:"customer_name"`
	Designation  string `db:"designation"`
	ReviewText   string `db:"review_text"`
	Rating       int    `db:"rating"`
	Featured     bool   `db:"featured"`
}

const DefaultDesignation = "Happy Customer"
