package model

import "github.com/sokha-dev/showfolio/internal/constant"

type Department struct {
	Reference
}

func (d Department) TableName() string {
	return "departments"
}

func (d Department) NameMaxLength() int {
	return constant.OrganizationalNameMaxLength
}
