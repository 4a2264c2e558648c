package model

import "github.com/sokha-dev/showfolio/internal/constant"

type Country struct {
	Reference
}

func (c Country) TableName() string {
	return "countries"
}

func (c Country) NameMaxLength() int {
	return constant.ReferenceNameMaxLength
}
