package domain

import "errors"

// Domain errors.
var (
	ErrContestNotFound      = errors.New("contest not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrAlreadyJoined        = errors.New("user already joined this contest")
	ErrNotCreator           = errors.New("only the contest creator can perform this action")
	ErrContestNotActive     = errors.New("contest is not active")
	ErrNotJoined            = errors.New("user has not joined this contest")
	ErrNoQuestions          = errors.New("no questions available for this contest")
	ErrContestFull          = errors.New("contest has reached its participant limit")
	ErrNameRequired         = errors.New("contest name is required")
	ErrStartTimeRequired    = errors.New("start time is required")
	ErrEndBeforeStart       = errors.New("end time must be after start time")
	ErrQuestionTextRequired = errors.New("question and answer text are required")
	ErrInvalidTransition    = errors.New("invalid contest status transition")
)
