package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Package represents a named service offering shown on the pricing page.
type Package struct {
	ID          uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string           `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Price       decimal.Decimal  `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string           `json:"description" gorm:"type:text;not null"`
	Features    []PackageFeature `json:"features" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time        `json:"created_at"`
}

// PackageFeature is one display line of a package. Strikethrough marks a
// feature that is listed but no longer included.
type PackageFeature struct {
	ID            uint      `json:"-" gorm:"primaryKey"`
	PackageID     uuid.UUID `json:"-" gorm:"type:char(36);not null;index"`
	Text          string    `json:"text" gorm:"size:255;not null"`
	Strikethrough bool      `json:"strikethrough" gorm:"not null;default:false"`
	Position      int       `json:"-" gorm:"not null;default:0"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
