package model

import "time"

// Profile extends a User with portfolio details. One profile per user,
// created synchronously when the user registers. Lookup references are
// cleared, not cascaded, when the referenced row is deleted.
type Profile struct {
	BaseModel
	UserID string `gorm:"type:text;not null;uniqueIndex" json:"user_id"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"user"`

	BirthDate *time.Time `gorm:"type:date" json:"birth_date" form:"birthDate"`
	Bio       string     `gorm:"type:text" json:"bio" form:"bio"`

	CountryID    *string     `gorm:"type:text" json:"country_id"`
	Country      *Country    `gorm:"constraint:OnDelete:SET NULL" json:"country,omitempty"`
	CityID       *string     `gorm:"type:text" json:"city_id"`
	City         *City       `gorm:"constraint:OnDelete:SET NULL" json:"city,omitempty"`
	DepartmentID *string     `gorm:"type:text" json:"department_id"`
	Department   *Department `gorm:"constraint:OnDelete:SET NULL" json:"department,omitempty"`
	PositionID   *string     `gorm:"type:text" json:"position_id"`
	Position     *Position   `gorm:"constraint:OnDelete:SET NULL" json:"position,omitempty"`

	// Object name of the avatar image, falls back to the shared placeholder.
	Avatar string `gorm:"type:text;not null;default:'images/person.png'" json:"avatar"`
}

func (p Profile) TableName() string {
	return "profiles"
}
