package domain

type User struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Email string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name  *string `gorm:"size:255" json:"name"`
}
