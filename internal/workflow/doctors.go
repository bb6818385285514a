package workflow

import (
	"context"

	"github.com/mhdirfanpn/panadol-platform-client/internal/controller"
	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
	"github.com/mhdirfanpn/panadol-platform-client/internal/service/doctor"
)

// NewOnboardDoctor builds the onboarding modal. The form defaults the
// specialization to GENERAL_PHYSICIAN.
func NewOnboardDoctor(ctrl *controller.Controller[model.Doctor], svc *doctor.Service) *Workflow[model.OnboardDoctorRequest] {
	return New(Definition[model.OnboardDoctorRequest]{
		NewForm: func() model.OnboardDoctorRequest {
			return model.OnboardDoctorRequest{Specialization: model.SpecGeneralPhysician}
		},
		Validate: validateOnboardDoctor,
		Submit: func(ctx context.Context, f model.OnboardDoctorRequest) error {
			return ctrl.Mutate(ctx, func(ctx context.Context) error {
				_, err := svc.Onboard(ctx, f)
				return err
			})
		},
		Fallback: "Failed to onboard doctor",
		OnClose:  ctrl.Deselect,
	})
}

// NewUpdateDoctorStatus builds the update-status modal for doctors.
func NewUpdateDoctorStatus(ctrl *controller.Controller[model.Doctor], svc *doctor.Service) *Workflow[StatusForm] {
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

// NewDeleteDoctor builds the delete confirmation dialog for the selected
// doctor.
func NewDeleteDoctor(ctrl *controller.Controller[model.Doctor], svc *doctor.Service) *Workflow[ConfirmForm] {
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
		Fallback: "Failed to delete doctor",
		OnClose:  ctrl.Deselect,
	})
}
