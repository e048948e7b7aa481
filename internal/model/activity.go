package model

type Activity struct {
	Model
	Name       string   `gorm:"type:varchar(100)"`
	Difficulty int      `gorm:"default:0"`
	Signups    []Signup `gorm:"constraint:OnDelete:CASCADE" validate:"-"`
}

func (Activity) TableName() string {
	return "activities"
}
