package model

import "github.com/sokha-dev/showfolio/internal/constant"

// Action is a named permission-like label. Unlike the other lookup
// entities it carries a free-form description.
type Action struct {
	Reference
	Description string `gorm:"type:text;default:'No description'" json:"description" form:"description"`
}

func (a *Action) SetDescription(description string) {
	a.Description = description
}

func (a Action) TableName() string {
	return "actions"
}

func (a Action) NameMaxLength() int {
	return constant.ActionNameMaxLength
}
