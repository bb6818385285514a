package model

import "time"

// Doctor extends a backing User with practice details. UserID references
// the account created during onboarding.
type Doctor struct {
	ID              int64          `json:"id"`
	UserID          int64          `json:"userId"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	Email           string         `json:"email"`
	PhoneNumber     string         `json:"phoneNumber"`
	Specialization  Specialization `json:"specialization"`
	LicenseNumber   string         `json:"licenseNumber"`
	ExperienceYears int            `json:"experienceYears"`
	Qualifications  string         `json:"qualifications"`
	Bio             string         `json:"bio,omitempty"`
	ConsultationFee float64        `json:"consultationFee"`
	Status          Status         `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
}

func (d Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}

// OnboardDoctorRequest is the POST /doctors/onboard payload; the server
// creates the backing user account alongside the doctor record.
type OnboardDoctorRequest struct {
	FirstName       string         `json:"firstName" validate:"required"`
	LastName        string         `json:"lastName" validate:"required"`
	Email           string         `json:"email" validate:"required"`
	Username        string         `json:"username" validate:"required"`
	Password        string         `json:"password" validate:"required"`
	PhoneNumber     string         `json:"phoneNumber" validate:"required"`
	Specialization  Specialization `json:"specialization" validate:"required"`
	LicenseNumber   string         `json:"licenseNumber" validate:"required"`
	ExperienceYears int            `json:"experienceYears" validate:"gte=0"`
	Qualifications  string         `json:"qualifications" validate:"required"`
	Bio             string         `json:"bio"`
	ConsultationFee float64        `json:"consultationFee" validate:"gte=0"`
}
