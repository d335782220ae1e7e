package model

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Blog struct {
	ID        string    `json:"_id"`
	OwnerID   string    `json:"-"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	Image     string    `json:"image"`
	ImageID   string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Populated on listings only.
	Owner *UserInfo `json:"owner,omitempty"`
}

// MediaRef pairs the blob store id with the public retrieval URL.
type MediaRef struct {
	ID  string
	URL string
}

type BlogPage struct {
	Blogs   []Blog `json:"blogs"`
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	HasMore bool   `json:"hasMore"`
}
