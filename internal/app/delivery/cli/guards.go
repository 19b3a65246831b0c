package cli

import (
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/exceptions"
)

// Role checks run locally so a user with the wrong session never spends a
// network round trip on a request the backend would refuse anyway.

func (app *App) requireStaff() error {
	if !app.Session.IsAuthenticated() {
		return exceptions.ErrNotLoggedIn()
	}
	user := app.Session.CurrentUser()
	if user == nil || user.UserType != constvars.UserTypeStaff {
		return exceptions.ErrRoleNotAllowed()
	}
	return nil
}

func (app *App) requirePatient() error {
	if !app.Session.IsAuthenticated() {
		return exceptions.ErrNotLoggedIn()
	}
	user := app.Session.CurrentUser()
	if user == nil || user.UserType != constvars.UserTypePatient {
		return exceptions.ErrRoleNotAllowed()
	}
	return nil
}
