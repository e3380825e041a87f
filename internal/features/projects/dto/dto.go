package projects_dto

import (
	"time"

	projects_enums "findteam/internal/features/projects/enums"
	"findteam/internal/features/tags"
)

type CreateProjectRequestDTO struct {
	Title       string                       `json:"title" binding:"required,max=128"`
	Description string                       `json:"description" binding:"max=4096"`
	Status      projects_enums.ProjectStatus `json:"status"`
	Tags        []tags.ProjectTagDTO         `json:"tags" binding:"dive"`
}

type UpdateProjectRequestDTO struct {
	Title       string                       `json:"title" binding:"required,max=128"`
	Description string                       `json:"description" binding:"max=4096"`
	Status      projects_enums.ProjectStatus `json:"status"`
	Members     []MemberInputDTO             `json:"members" binding:"dive"`
	Tags        []tags.ProjectTagDTO         `json:"tags" binding:"dive"`
}

type MemberInputDTO struct {
	UID            int64                         `json:"uid" binding:"required"`
	MembershipType projects_enums.MembershipType `json:"membership_type" binding:"required"`
}

type MemberResultDTO struct {
	UID            int64                         `json:"uid"`
	MembershipType projects_enums.MembershipType `json:"membership_type"`
}

type ProjectResponseDTO struct {
	PID         int64                        `json:"pid"`
	OwnerUID    int64                        `json:"owner_uid"`
	Title       string                       `json:"title"`
	Description string                       `json:"description"`
	Status      projects_enums.ProjectStatus `json:"status"`
	CreatedAt   time.Time                    `json:"created_at"`
	Members     []MemberResultDTO            `json:"members"`
	Pictures    []string                     `json:"pictures"`
	Tags        []tags.ProjectTagDTO         `json:"tags"`
}

type ProjectSummaryDTO struct {
	PID      int64                        `json:"pid"`
	OwnerUID int64                        `json:"owner_uid"`
	Title    string                       `json:"title"`
	Status   projects_enums.ProjectStatus `json:"status"`
}

type ProjectListResponseDTO struct {
	Projects []ProjectSummaryDTO `json:"projects"`
}

type AddPictureResponseDTO struct {
	Picture string `json:"picture"`
}
