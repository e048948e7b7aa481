package model

import "gorm.io/gorm"

type Signup struct {
	Model
	Time       int       `gorm:"not null" validate:"min=0,max=23"` // 活动开始的整点，0-23
	CamperID   uint      `gorm:"not null;index" validate:"required"`
	ActivityID uint      `gorm:"not null;index" validate:"required"`
	Camper     *Camper   `validate:"-"`
	Activity   *Activity `validate:"-"`
}

func (Signup) TableName() string {
	return "signups"
}

func (s *Signup) BeforeSave(*gorm.DB) error {
	return Validate(s)
}
