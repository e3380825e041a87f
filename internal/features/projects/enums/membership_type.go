package projects_enums

// MembershipType is the ordered permission level a user holds on a
// project: PENDING < MEMBER < ADMIN. The project owner is implicit and
// never stored as a membership row.
type MembershipType string

const (
	MembershipPending MembershipType = "PENDING"
	MembershipMember  MembershipType = "MEMBER"
	MembershipAdmin   MembershipType = "ADMIN"
)

func (m MembershipType) IsValid() bool {
	switch m {
	case MembershipPending, MembershipMember, MembershipAdmin:
		return true
	default:
		return false
	}
}

func (m MembershipType) Rank() int {
	switch m {
	case MembershipPending:
		return 1
	case MembershipMember:
		return 2
	case MembershipAdmin:
		return 3
	default:
		return 0
	}
}

func (m MembershipType) AtLeast(other MembershipType) bool {
	return m.Rank() >= other.Rank()
}
