package errors

import "errors"

var (
	ErrUserNotFound         = errors.New("user with provided username was not found")
	ErrWrongPassword        = errors.New("wrong password")
	ErrSessionNotFound      = errors.New("session was not found")
	ErrUserExists           = errors.New("user already exists")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrGameNotFound         = errors.New("game not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrSpaceNotFound        = errors.New("space not found")
	ErrTournamentNotFound   = errors.New("tournament not found")
	ErrGameHasMatches       = errors.New("game is referenced by existing matches")
	ErrParticipantNotFound  = errors.New("participant is not on the player roster")
	ErrWinnerNotParticipant = errors.New("winner id is not in the match participant list")
	ErrAwardNotParticipant  = errors.New("points award references a non-participant")
	ErrNoParticipants       = errors.New("match has no participants")
	ErrBadAiResponse        = errors.New("model response could not be parsed")
	ErrInternal             = errors.New("internal error")
)
