package serverapp

import (
	"errors"
	"net/http"

	"github.com/thedidscuf/GameYoutube/internal/model"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// First match wins.
var errorMappings = []errorMapping{
	{model.ErrNotFound, http.StatusNotFound, "not_found"},

	{model.ErrInvalidTitle, http.StatusUnprocessableEntity, "invalid_title"},
	{model.ErrInvalidGenre, http.StatusUnprocessableEntity, "invalid_genre"},
	{model.ErrInvalidSubGenre, http.StatusUnprocessableEntity, "invalid_sub_genre"},
	{model.ErrInvalidRecordingMethod, http.StatusUnprocessableEntity, "invalid_recording_method"},
	{model.ErrInvalidName, http.StatusUnprocessableEntity, "invalid_name"},
	{model.ErrUnknownSlot, http.StatusBadRequest, "unknown_slot"},

	{model.ErrInsufficientFunds, http.StatusPaymentRequired, "insufficient_funds"},

	{model.ErrInsufficientEnergy, http.StatusConflict, "insufficient_energy"},
	{model.ErrAlreadyPlayedToday, http.StatusConflict, "already_played_today"},
	{model.ErrMaxLevel, http.StatusConflict, "max_level"},
	{model.ErrNotEligible, http.StatusConflict, "not_eligible"},
	{model.ErrChannelLimit, http.StatusConflict, "channel_limit"},

	{model.ErrInvalidState, http.StatusConflict, "invalid_state"},
	{model.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
}

func classify(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "internal"
}
