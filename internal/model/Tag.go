package model

import "github.com/sokha-dev/showfolio/internal/constant"

type Tag struct {
	Reference
}

func (t Tag) TableName() string {
	return "tags"
}

func (t Tag) NameMaxLength() int {
	return constant.ReferenceNameMaxLength
}
