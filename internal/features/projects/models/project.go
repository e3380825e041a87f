package projects_models

import (
	"time"

	projects_enums "findteam/internal/features/projects/enums"
)

type Project struct {
	PID         int64                        `json:"pid" gorm:"column:pid;primaryKey;autoIncrement"`
	OwnerUID    int64                        `json:"owner_uid" gorm:"column:owner_uid;not null;index"`
	Title       string                       `json:"title" gorm:"column:title;size:128;uniqueIndex;not null"`
	Description string                       `json:"description" gorm:"column:description;size:4096;not null"`
	Status      projects_enums.ProjectStatus `json:"status" gorm:"column:status;not null"`
	CreatedAt   time.Time                    `json:"created_at" gorm:"column:created_at"`

	IsNotExists bool `json:"isNotExists,omitempty" gorm:"-"` // Used for caching non-existent projects
}

func (Project) TableName() string {
	return "projects"
}
