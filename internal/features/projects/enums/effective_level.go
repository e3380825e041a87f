package projects_enums

// EffectiveLevel is a user's resolved permission over a project. OWNER
// sits strictly above ADMIN: only the owner may delete the project.
type EffectiveLevel int

const (
	LevelNone EffectiveLevel = iota
	LevelPending
	LevelMember
	LevelAdmin
	LevelOwner
)

func LevelFromMembership(m MembershipType) EffectiveLevel {
	switch m {
	case MembershipPending:
		return LevelPending
	case MembershipMember:
		return LevelMember
	case MembershipAdmin:
		return LevelAdmin
	default:
		return LevelNone
	}
}

// CanEditProject reports whether the level may change project fields,
// replace the tag set or replace the membership roster.
func (l EffectiveLevel) CanEditProject() bool {
	return l >= LevelAdmin
}

// CanDeleteProject is owner-only.
func (l EffectiveLevel) CanDeleteProject() bool {
	return l == LevelOwner
}

// CanManagePictures reports whether the level may add or remove project
// pictures: the owner or a membership of exactly ADMIN.
func (l EffectiveLevel) CanManagePictures() bool {
	return l == LevelAdmin || l == LevelOwner
}

// CanApply reports whether a user at this level may submit a new
// membership application.
func (l EffectiveLevel) CanApply() bool {
	return l == LevelNone
}

func (l EffectiveLevel) String() string {
	switch l {
	case LevelPending:
		return "PENDING"
	case LevelMember:
		return "MEMBER"
	case LevelAdmin:
		return "ADMIN"
	case LevelOwner:
		return "OWNER"
	default:
		return "NONE"
	}
}
