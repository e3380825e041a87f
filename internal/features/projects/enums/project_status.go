package projects_enums

type ProjectStatus string

const (
	StatusAwaiting   ProjectStatus = "AWAITING"
	StatusInProgress ProjectStatus = "IN_PROGRESS"
	StatusCompleted  ProjectStatus = "COMPLETED"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusAwaiting, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}
