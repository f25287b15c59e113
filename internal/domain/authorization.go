package domain

import "strings"

// AuthorizationAnswer is the manager's verdict on a pending account or permit.
type AuthorizationAnswer string

const (
	AnswerAccept AuthorizationAnswer = "ACCEPT"
	AnswerDeny   AuthorizationAnswer = "DENY"
)

// Matches compares an answer string case-insensitively.
func (a AuthorizationAnswer) Matches(answer string) bool {
	return strings.EqualFold(string(a), answer)
}
