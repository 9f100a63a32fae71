package entity

import "github.com/google/uuid"

type Client struct {
	BaseSimple
	Name      string `db:"name"`
	LogoURL   string `db:"logo_url"`
	Website   string `db:"website"`
	SortOrder int    `db:"sort_order"`
}

type BlogPost struct {
	BaseNoDelete
	ProjectID        *uuid.UUID `db:"project_id"`
	Title            string     `db:"title"`
	Slug             string     `db:"slug"`
	Excerpt          string     `db:"excerpt"`
	Content          string     `db:"content"`
	FeaturedImageURL string     `db:"featured_image_url"`
	VideoURL         string     `db:"video_url"`
	Author           string     `db:"author"`
	Category         string     `db:"category"`
	Views            int        `db:"views"`
	Published        bool       `db:"published"`
}

type Achievement struct {
	BaseSimple
	Title       string `db:"title"`
	Description string `db:"description"`
	ImageURL    string `db:"image_url"`
	SortOrder   int    `db:"sort_order"`
}
