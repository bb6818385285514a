package model

import (
	"encoding/json"
	"fmt"
)

// Role identifies what a platform user is allowed to do.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleDoctor     Role = "DOCTOR"
	RolePatient    Role = "PATIENT"
	RoleStaff      Role = "STAFF"
)

// Roles lists every valid role in display order.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleDoctor, RolePatient, RoleStaff}
}

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleDoctor, RolePatient, RoleStaff:
		return true
	}
	return false
}

// UnmarshalJSON rejects roles the client does not know about instead of
// letting them pass through silently.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if !Role(s).Valid() {
		return fmt.Errorf("unknown role %q", s)
	}
	*r = Role(s)
	return nil
}

// Status is shared by users and doctors; the two values are independent.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusPending   Status = "PENDING"
	StatusOnLeave   Status = "ON_LEAVE"
)

// Statuses lists every valid status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusInactive, StatusSuspended, StatusPending, StatusOnLeave}
}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusPending, StatusOnLeave:
		return true
	}
	return false
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	if !Status(str).Valid() {
		return fmt.Errorf("unknown status %q", str)
	}
	*s = Status(str)
	return nil
}

// Specialization is the closed set of medical specialties a doctor may hold.
type Specialization string

const (
	SpecGeneralPhysician Specialization = "GENERAL_PHYSICIAN"
	SpecCardiologist     Specialization = "CARDIOLOGIST"
	SpecDermatologist    Specialization = "DERMATOLOGIST"
	SpecPediatrician     Specialization = "PEDIATRICIAN"
	SpecOrthopedic       Specialization = "ORTHOPEDIC"
	SpecNeurologist      Specialization = "NEUROLOGIST"
	SpecPsychiatrist     Specialization = "PSYCHIATRIST"
	SpecGynecologist     Specialization = "GYNECOLOGIST"
	SpecOphthalmologist  Specialization = "OPHTHALMOLOGIST"
	SpecENTSpecialist    Specialization = "ENT_SPECIALIST"
	SpecDentist          Specialization = "DENTIST"
	SpecRadiologist      Specialization = "RADIOLOGIST"
	SpecAnesthesiologist Specialization = "ANESTHESIOLOGIST"
	SpecSurgeon          Specialization = "SURGEON"
)

// Specializations lists every valid specialization in display order.
func Specializations() []Specialization {
	return []Specialization{
		SpecGeneralPhysician, SpecCardiologist, SpecDermatologist, SpecPediatrician,
		SpecOrthopedic, SpecNeurologist, SpecPsychiatrist, SpecGynecologist,
		SpecOphthalmologist, SpecENTSpecialist, SpecDentist, SpecRadiologist,
		SpecAnesthesiologist, SpecSurgeon,
	}
}

func (s Specialization) Valid() bool {
	for _, v := range Specializations() {
		if s == v {
			return true
		}
	}
	return false
}

func (s *Specialization) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	if !Specialization(str).Valid() {
		return fmt.Errorf("unknown specialization %q", str)
	}
	*s = Specialization(str)
	return nil
}
