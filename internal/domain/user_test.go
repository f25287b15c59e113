package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/hr-service/internal/domain"
)

func TestUsableStates(t *testing.T) {
	assert.True(t, domain.UserStateActive.Usable())
	assert.True(t, domain.UserStateInactive.Usable())
	assert.False(t, domain.UserStatePending.Usable())
	assert.False(t, domain.UserStateInReview.Usable())
	assert.False(t, domain.UserStateDenied.Usable())
}

func TestStateSetsExcludeDenied(t *testing.T) {
	all := append([]domain.UserState{}, domain.CustomerStates...)
	all = append(all, domain.StatesOnWait...)

	assert.NotContains(t, all, domain.UserStateDenied)
	assert.Len(t, all, 4)
}

func TestAnswerMatchesIsCaseInsensitive(t *testing.T) {
	assert.True(t, domain.AnswerAccept.Matches("accept"))
	assert.True(t, domain.AnswerAccept.Matches("ACCEPT"))
	assert.True(t, domain.AnswerDeny.Matches("Deny"))
	assert.False(t, domain.AnswerAccept.Matches("deny"))
	assert.False(t, domain.AnswerDeny.Matches(""))
}
