package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"campus-eats/services"
	"campus-eats/store"
)

// validate checks request payload struct tags.
var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondError maps domain errors onto HTTP statuses. Unrecognized
// errors are logged and surfaced as a generic server failure.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrUnknownStatus),
		errors.Is(err, store.ErrDuplicateEmail):
		respondMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, services.ErrItemNotInCart):
		respondMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrIllegalTransition),
		errors.Is(err, services.ErrCartBusy):
		respondMessage(w, http.StatusConflict, err.Error())
	default:
		log.Error().Err(err).Msg("internal error")
		respondMessage(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
