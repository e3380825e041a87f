package tags_test

import (
	"testing"

	audit_logs "findteam/internal/features/audit_logs"
	"findteam/internal/features/tags"
	users_testing "findteam/internal/features/users/testing"
	"findteam/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func Test_ReconcileUserTags_ReplacesWholeSet(t *testing.T) {
	audit_logs.SetupDependencies()

	user, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	service := tags.GetTagService()
	suffix := uuid.New().String()

	tagA := tags.TagDTO{Text: "a-" + suffix, Category: "skill"}
	tagB := tags.TagDTO{Text: "b-" + suffix, Category: "skill"}
	tagC := tags.TagDTO{Text: "c-" + suffix, Category: "interest"}

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		return service.ReconcileUserTags(tx, user.UID, []tags.TagDTO{tagA, tagB})
	})
	assert.NoError(t, err)

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		return service.ReconcileUserTags(tx, user.UID, []tags.TagDTO{tagB, tagC})
	})
	assert.NoError(t, err)

	stored, err := service.GetUserTags(user.UID)
	assert.NoError(t, err)

	texts := make([]string, len(stored))
	for i, tag := range stored {
		texts[i] = tag.Text
	}

	assert.ElementsMatch(t, []string{tagB.Text, tagC.Text}, texts)
}

func Test_ReconcileUserTags_SharedTagSurvivesOtherUsersReplace(t *testing.T) {
	audit_logs.SetupDependencies()

	first, err := users_testing.CreateTestUser()
	assert.NoError(t, err)
	second, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	service := tags.GetTagService()
	shared := tags.TagDTO{Text: "shared-" + uuid.New().String(), Category: "skill"}

	// the same catalog row backs both links; the second insert is a no-op
	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		return service.ReconcileUserTags(tx, first.UID, []tags.TagDTO{shared})
	})
	assert.NoError(t, err)

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		return service.ReconcileUserTags(tx, second.UID, []tags.TagDTO{shared})
	})
	assert.NoError(t, err)

	// clearing the first user's set must not touch the second user's link
	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		return service.ReconcileUserTags(tx, first.UID, nil)
	})
	assert.NoError(t, err)

	firstTags, err := service.GetUserTags(first.UID)
	assert.NoError(t, err)
	assert.Empty(t, firstTags)

	secondTags, err := service.GetUserTags(second.UID)
	assert.NoError(t, err)
	assert.Len(t, secondTags, 1)
	assert.Equal(t, shared.Text, secondTags[0].Text)
}

func Test_ReconcileUserTags_EmptySetClearsLinks(t *testing.T) {
	audit_logs.SetupDependencies()

	user, err := users_testing.CreateTestUser()
	assert.NoError(t, err)

	service := tags.GetTagService()
	tag := tags.TagDTO{Text: "solo-" + uuid.New().String(), Category: "skill"}

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		return service.ReconcileUserTags(tx, user.UID, []tags.TagDTO{tag})
	})
	assert.NoError(t, err)

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		return service.ReconcileUserTags(tx, user.UID, []tags.TagDTO{})
	})
	assert.NoError(t, err)

	stored, err := service.GetUserTags(user.UID)
	assert.NoError(t, err)
	assert.Empty(t, stored)
}
