package projects_models

import (
	"time"

	projects_enums "findteam/internal/features/projects/enums"
)

// ProjectMembership is one row of the explicit roster. The owner never
// has a row; ownership is implied by projects.owner_uid.
type ProjectMembership struct {
	PID            int64                          `json:"pid" gorm:"column:pid;primaryKey"`
	UID            int64                          `json:"uid" gorm:"column:uid;primaryKey"`
	MembershipType projects_enums.MembershipType  `json:"membership_type" gorm:"column:membership_type;size:16;not null"`
	CreatedAt      time.Time                      `json:"created_at" gorm:"column:created_at"`
}

func (ProjectMembership) TableName() string {
	return "project_memberships"
}
