package model

import "github.com/sokha-dev/showfolio/internal/constant"

type Status struct {
	Reference
}

func (s Status) TableName() string {
	return "statuses"
}

func (s Status) NameMaxLength() int {
	return constant.StatusNameMaxLength
}
