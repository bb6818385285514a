package workflow

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
)

// User-facing validation messages, kept identical across resources.
const (
	msgRequiredFields = "Please fill in all required fields"
	msgNegativeYears  = "Years of experience cannot be negative"
	msgNegativeFee    = "Consultation fee cannot be negative"
)

var validate = validator.New()

// validateCreateUser checks required-field presence on the create form.
func validateCreateUser(f model.CreateUserRequest) string {
	if err := validate.Struct(f); err != nil {
		return msgRequiredFields
	}
	return ""
}

// validateOnboardDoctor checks required fields first, then the numeric
// bounds, mirroring the order the messages are expected in.
func validateOnboardDoctor(f model.OnboardDoctorRequest) string {
	err := validate.Struct(f)
	if err == nil {
		return ""
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return msgRequiredFields
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return msgRequiredFields
		}
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "gte" {
			if fe.Field() == "ExperienceYears" {
				return msgNegativeYears
			}
			return msgNegativeFee
		}
	}
	return msgRequiredFields
}

// StatusForm carries an update-status submission. ID is captured from the
// selected entity when the workflow opens.
type StatusForm struct {
	ID     int64
	Status model.Status
}

func validateStatus(f StatusForm) string {
	if !f.Status.Valid() {
		return msgRequiredFields
	}
	return ""
}

// ConfirmForm carries a delete confirmation; Name is only for display.
type ConfirmForm struct {
	ID   int64
	Name string
}
