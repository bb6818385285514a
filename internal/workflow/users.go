package workflow

import (
	"context"

	"github.com/mhdirfanpn/panadol-platform-client/internal/controller"
	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
	"github.com/mhdirfanpn/panadol-platform-client/internal/service/user"
)

// NewCreateUser builds the create-user modal. The form defaults the role to
// PATIENT; a successful submit refetches the user collection through the
// controller before the modal closes.
func NewCreateUser(ctrl *controller.Controller[model.User], svc *user.Service) *Workflow[model.CreateUserRequest] {
	return New(Definition[model.CreateUserRequest]{
		NewForm: func() model.CreateUserRequest {
			return model.CreateUserRequest{Role: model.RolePatient}
		},
		Validate: validateCreateUser,
		Submit: func(ctx context.Context, f model.CreateUserRequest) error {
			return ctrl.Mutate(ctx, func(ctx context.Context) error {
				_, err := svc.Create(ctx, f)
				return err
			})
		},
		Fallback: "Failed to create user",
		OnClose:  ctrl.Deselect,
	})
}

// NewUpdateUserStatus builds the update-status modal, seeded from the
// selected user's present status. It does not open without a selection.
func NewUpdateUserStatus(ctrl *controller.Controller[model.User], svc *user.Service) *Workflow[StatusForm] {
	return New(Definition[StatusForm]{
		Seed: func() (StatusForm, bool) {
			sel, ok := ctrl.Selected()
			if !ok {
				return StatusForm{}, false
			}
			return StatusForm{ID: sel.ID, Status: sel.Status}, true
		},
		Validate: validateStatus,
		Submit: func(ctx context.Context, f StatusForm) error {
			return ctrl.Mutate(ctx, func(ctx context.Context) error {
				_, err := svc.UpdateStatus(ctx, f.ID, f.Status)
				return err
			})
		},
		Fallback: "Failed to update status",
		OnClose:  ctrl.Deselect,
	})
}

// NewDeleteUser builds the delete confirmation dialog for the selected user.
func NewDeleteUser(ctrl *controller.Controller[model.User], svc *user.Service) *Workflow[ConfirmForm] {
	return New(Definition[ConfirmForm]{
		Seed: func() (ConfirmForm, bool) {
			sel, ok := ctrl.Selected()
			if !ok {
				return ConfirmForm{}, false
			}
			return ConfirmForm{ID: sel.ID, Name: sel.FullName()}, true
		},
		Submit: func(ctx context.Context, f ConfirmForm) error {
			return ctrl.Mutate(ctx, func(ctx context.Context) error {
				return svc.Delete(ctx, f.ID)
			})
		},
		Fallback: "Failed to delete user",
		OnClose:  ctrl.Deselect,
	})
}
