package domain

type Job struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	PosterID    uint   `gorm:"not null" json:"posterId"`
	// Poster is loaded (and serialized) only on the full listing endpoint.
	Poster *User `gorm:"foreignKey:PosterID" json:"poster,omitempty"`
}
