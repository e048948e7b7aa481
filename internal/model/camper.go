package model

import "gorm.io/gorm"

type Camper struct {
	Model
	Name    string   `gorm:"type:varchar(100);not null" validate:"required"`
	Age     int      `gorm:"not null" validate:"min=8,max=18"`
	Signups []Signup `gorm:"constraint:OnDelete:CASCADE" validate:"-"`
}

func (Camper) TableName() string {
	return "campers"
}

func (c *Camper) BeforeSave(*gorm.DB) error {
	return Validate(c)
}
