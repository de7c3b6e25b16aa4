package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Author      string    `gorm:"not null" json:"author"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	Year        *int      `json:"year,omitempty"`
	Cover       string    `json:"cover,omitempty"` // cover image URL
	AddedBy     string    `gorm:"type:uuid;not null;index" json:"added_by"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Owner User `json:"owner,omitempty" gorm:"foreignKey:AddedBy"`
}

func (book *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	return
}

func (Book) TableName() string {
	return "books"
}
