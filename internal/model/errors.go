package model

import "errors"

// Validation errors. They are recoverable, surfaced to the player, and never
// leave a channel half-updated.
var (
	ErrInvalidTitle           = errors.New("video title is required")
	ErrInvalidGenre           = errors.New("genre is required")
	ErrInvalidSubGenre        = errors.New("sub-genre is required for this genre")
	ErrInvalidRecordingMethod = errors.New("unknown recording method")
	ErrInsufficientEnergy     = errors.New("not enough energy")
	ErrInsufficientFunds      = errors.New("not enough money")
	ErrAlreadyPlayedToday     = errors.New("minigame already played today")
	ErrMaxLevel               = errors.New("equipment already at max level")
	ErrUnknownSlot            = errors.New("unknown equipment slot")
	ErrNotEligible            = errors.New("channel is not eligible for monetization")
	ErrChannelLimit           = errors.New("channel limit reached")
	ErrInvalidName            = errors.New("channel name is required")
)

// Misuse of a minigame session: wrong phase, wrong action, finalize twice.
var (
	ErrInvalidState = errors.New("invalid session state")
	ErrInvalidInput = errors.New("invalid session input")
)

var ErrNotFound = errors.New("not found")

var validationErrors = []error{
	ErrInvalidTitle,
	ErrInvalidGenre,
	ErrInvalidSubGenre,
	ErrInvalidRecordingMethod,
	ErrInsufficientEnergy,
	ErrInsufficientFunds,
	ErrAlreadyPlayedToday,
	ErrMaxLevel,
	ErrUnknownSlot,
	ErrNotEligible,
	ErrChannelLimit,
	ErrInvalidName,
}

// IsValidation reports whether err is one of the player-facing validation
// errors.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
