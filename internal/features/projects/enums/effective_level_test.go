package projects_enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EffectiveLevel_OrderingIsStrict(t *testing.T) {
	assert.True(t, LevelNone < LevelPending)
	assert.True(t, LevelPending < LevelMember)
	assert.True(t, LevelMember < LevelAdmin)
	assert.True(t, LevelAdmin < LevelOwner)
}

func Test_EffectiveLevel_PolicyTable(t *testing.T) {
	cases := []struct {
		level             EffectiveLevel
		canEdit           bool
		canDelete         bool
		canManagePictures bool
		canApply          bool
	}{
		{LevelNone, false, false, false, true},
		{LevelPending, false, false, false, false},
		{LevelMember, false, false, false, false},
		{LevelAdmin, true, false, true, false},
		{LevelOwner, true, true, true, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.canEdit, c.level.CanEditProject(), "CanEditProject for %s", c.level)
		assert.Equal(t, c.canDelete, c.level.CanDeleteProject(), "CanDeleteProject for %s", c.level)
		assert.Equal(t, c.canManagePictures, c.level.CanManagePictures(), "CanManagePictures for %s", c.level)
		assert.Equal(t, c.canApply, c.level.CanApply(), "CanApply for %s", c.level)
	}
}

func Test_LevelFromMembership_MapsRosterTypes(t *testing.T) {
	assert.Equal(t, LevelPending, LevelFromMembership(MembershipPending))
	assert.Equal(t, LevelMember, LevelFromMembership(MembershipMember))
	assert.Equal(t, LevelAdmin, LevelFromMembership(MembershipAdmin))
	assert.Equal(t, LevelNone, LevelFromMembership(MembershipType("")))
}

func Test_MembershipType_RankAndValidity(t *testing.T) {
	assert.True(t, MembershipAdmin.AtLeast(MembershipMember))
	assert.True(t, MembershipMember.AtLeast(MembershipPending))
	assert.False(t, MembershipPending.AtLeast(MembershipMember))

	assert.True(t, MembershipPending.IsValid())
	assert.True(t, MembershipMember.IsValid())
	assert.True(t, MembershipAdmin.IsValid())
	assert.False(t, MembershipType("OWNER").IsValid())
	assert.False(t, MembershipType("").IsValid())
}
