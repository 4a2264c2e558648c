package model

import "github.com/sokha-dev/showfolio/internal/constant"

type Position struct {
	Reference
}

func (p Position) TableName() string {
	return "positions"
}

func (p Position) NameMaxLength() int {
	return constant.OrganizationalNameMaxLength
}
