package model

import "github.com/sokha-dev/showfolio/internal/constant"

type City struct {
	Reference
}

func (c City) TableName() string {
	return "cities"
}

func (c City) NameMaxLength() int {
	return constant.ReferenceNameMaxLength
}
