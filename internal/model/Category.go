package model

import "github.com/sokha-dev/showfolio/internal/constant"

type Category struct {
	Reference
}

func (c Category) TableName() string {
	return "categories"
}

func (c Category) NameMaxLength() int {
	return constant.ReferenceNameMaxLength
}
