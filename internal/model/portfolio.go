package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PortfolioCategory is the fixed set of gallery categories.
type PortfolioCategory string

const (
	CategoryWedding    PortfolioCategory = "wedding"
	CategoryPortrait   PortfolioCategory = "portrait"
	CategoryEvent      PortfolioCategory = "event"
	CategoryCommercial PortfolioCategory = "commercial"
)

// ValidCategory reports whether c is one of the known gallery categories.
func ValidCategory(c PortfolioCategory) bool {
	switch c {
	case CategoryWedding, CategoryPortrait, CategoryEvent, CategoryCommercial:
		return true
	}
	return false
}

// PortfolioItem is one gallery entry. StoragePath identifies the stored
// image asset so deletion can remove it from disk as well.
type PortfolioItem struct {
	ID          uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string            `json:"title" gorm:"size:255;not null"`
	Category    PortfolioCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	ImageURL    string            `json:"image_url" gorm:"size:512;not null"`
	StoragePath string            `json:"-" gorm:"size:512;not null"`
	AltText     string            `json:"alt_text" gorm:"size:255;not null"`
	CreatedAt   time.Time         `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *PortfolioItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
