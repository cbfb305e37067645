package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bangladeshi mobile numbers: optional +88/88 prefix, then 01 and an operator digit 3-9.
var bdMobileRegex = regexp.MustCompile(`^(\+?88)?01[3-9]\d{8}$`)

var (
	ErrInvalidContactNo = errors.New("invalid contact number")
)

// Dilar is a wholesale currency dealer the exchange desk trades with,
// as opposed to a walk-in customer.
type Dilar struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OwnerName     string         `gorm:"type:varchar(100);not null" json:"ownerName"`
	ContactNo     string         `gorm:"type:varchar(20);not null;index" json:"contactNo"`
	TradeName     string         `gorm:"type:varchar(100)" json:"tradeName,omitempty"`
	TradeLocation string         `gorm:"type:varchar(200)" json:"tradeLocation,omitempty"`
	NID           string         `gorm:"type:varchar(30)" json:"nid,omitempty"`
	LogoURL       string         `gorm:"type:varchar(500)" json:"logo,omitempty"`
	IsActive      bool           `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt     time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Associations
	Exchanges []Exchange `gorm:"foreignKey:DilarID" json:"-"`
}

// BeforeCreate hook for Dilar
func (d *Dilar) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	now := time.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}

	return d.Validate()
}

// BeforeUpdate hook for Dilar
func (d *Dilar) BeforeUpdate(tx *gorm.DB) error {
	d.UpdatedAt = time.Now()
	return d.Validate()
}

// Validate validates the dilar fields
func (d *Dilar) Validate() error {
	if d.OwnerName == "" {
		return errors.New("owner name is required")
	}

	if !IsValidBDMobile(d.ContactNo) {
		return ErrInvalidContactNo
	}

	return nil
}

// Deactivate soft-disables the dilar without losing its exchange history
func (d *Dilar) Deactivate() {
	d.IsActive = false
}

// TableName returns the table name for Dilar
func (d *Dilar) TableName() string {
	return "dilars"
}

// IsValidBDMobile checks whether a string is a valid Bangladeshi mobile number
func IsValidBDMobile(contactNo string) bool {
	return bdMobileRegex.MatchString(contactNo)
}
