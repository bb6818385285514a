package controller

import (
	"context"

	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
	"github.com/mhdirfanpn/panadol-platform-client/internal/service/doctor"
	"github.com/mhdirfanpn/panadol-platform-client/internal/service/user"
)

// NewUsers wires a controller to the user service. The category filter is
// the role; search covers first name, last name, email and username.
func NewUsers(svc *user.Service) *Controller[model.User] {
	return New(
		func(ctx context.Context) ([]model.User, error) { return svc.List(ctx) },
		Fields[model.User]{
			Category: func(u model.User) string { return string(u.Role) },
			Search: []func(model.User) string{
				func(u model.User) string { return u.FirstName },
				func(u model.User) string { return u.LastName },
				func(u model.User) string { return u.Email },
				func(u model.User) string { return u.Username },
			},
		},
		"Failed to load users",
	)
}

// NewDoctors wires a controller to the doctor service. The category filter
// is the specialization; search covers first name, last name, email and
// license number.
func NewDoctors(svc *doctor.Service) *Controller[model.Doctor] {
	return New(
		func(ctx context.Context) ([]model.Doctor, error) { return svc.List(ctx) },
		Fields[model.Doctor]{
			Category: func(d model.Doctor) string { return string(d.Specialization) },
			Search: []func(model.Doctor) string{
				func(d model.Doctor) string { return d.FirstName },
				func(d model.Doctor) string { return d.LastName },
				func(d model.Doctor) string { return d.Email },
				func(d model.Doctor) string { return d.LicenseNumber },
			},
		},
		"Failed to load doctors",
	)
}
