package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("invalid or expired verification code")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrSessionNotFound    = errors.New("assessment session not found")
	ErrSessionCompleted   = errors.New("assessment session already completed")
	ErrPostNotFound       = errors.New("blog post not found")
	ErrSlugTaken          = errors.New("a post with this slug already exists")
	ErrAlreadySubscribed  = errors.New("email already subscribed")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)
