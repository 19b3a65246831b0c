package controllers

import (
	"net/http"
	"pathlab-client/internal/pkg/exceptions"
	"pathlab-client/internal/pkg/utils"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// parseBody decodes and validates a JSON request body in one step.
func parseBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := utils.ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, exceptions.ErrResourceNotFound(name)
	}
	return id, nil
}
