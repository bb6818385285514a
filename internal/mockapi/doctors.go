package mockapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
)

type onboardDoctorBody struct {
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required"`
	Username        string  `json:"username" binding:"required"`
	Password        string  `json:"password" binding:"required"`
	PhoneNumber     string  `json:"phoneNumber" binding:"required"`
	Specialization  string  `json:"specialization" binding:"required"`
	LicenseNumber   string  `json:"licenseNumber" binding:"required"`
	ExperienceYears int     `json:"experienceYears" binding:"gte=0"`
	Qualifications  string  `json:"qualifications" binding:"required"`
	Bio             string  `json:"bio"`
	ConsultationFee float64 `json:"consultationFee" binding:"gte=0"`
}

func (s *Server) listDoctors(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.sortedDoctors())
}

func (s *Server) getDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid doctor id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.doctors[id]
	if !ok {
		respondError(c, http.StatusNotFound, fmt.Sprintf("Doctor not found with id: %d", id))
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) listDoctorsBySpecialization(c *gin.Context) {
	spec := model.Specialization(c.Param("spec"))
	if !spec.Valid() {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid specialization: %s", c.Param("spec")))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]model.Doctor, 0)
	for _, d := range s.sortedDoctors() {
		if d.Specialization == spec {
			matched = append(matched, d)
		}
	}
	c.JSON(http.StatusOK, matched)
}

// onboardDoctor creates the doctor record together with its backing user
// account, like the real onboarding flow.
func (s *Server) onboardDoctor(c *gin.Context) {
	var body onboardDoctorBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	spec := model.Specialization(body.Specialization)
	if !spec.Valid() {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid specialization: %s", body.Specialization))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == body.Email {
			respondError(c, http.StatusConflict, "Email already exists")
			return
		}
		if u.Username == body.Username {
			respondError(c, http.StatusConflict, "Username already exists")
			return
		}
	}
	for _, d := range s.doctors {
		if d.LicenseNumber == body.LicenseNumber {
			respondError(c, http.StatusConflict, "License number already exists")
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to process password")
		return
	}

	now := time.Now().UTC().Truncate(time.Second)
	backing := &userRecord{
		User: model.User{
			ID:          s.nextUserID,
			FirstName:   body.FirstName,
			LastName:    body.LastName,
			Email:       body.Email,
			Username:    body.Username,
			PhoneNumber: body.PhoneNumber,
			Role:        model.RoleDoctor,
			Status:      model.StatusActive,
			CreatedAt:   now,
		},
		passwordHash: hash,
	}
	s.nextUserID++
	s.users[backing.ID] = backing

	doctor := &model.Doctor{
		ID:              s.nextDoctor,
		UserID:          backing.ID,
		FirstName:       body.FirstName,
		LastName:        body.LastName,
		Email:           body.Email,
		PhoneNumber:     body.PhoneNumber,
		Specialization:  spec,
		LicenseNumber:   body.LicenseNumber,
		ExperienceYears: body.ExperienceYears,
		Qualifications:  body.Qualifications,
		Bio:             body.Bio,
		ConsultationFee: body.ConsultationFee,
		Status:          model.StatusPending,
		CreatedAt:       now,
	}
	s.nextDoctor++
	s.doctors[doctor.ID] = doctor
	c.JSON(http.StatusCreated, doctor)
}

func (s *Server) updateDoctorStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid doctor id")
		return
	}
	status := model.Status(c.Query("status"))
	if !status.Valid() {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid status: %s", c.Query("status")))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.doctors[id]
	if !ok {
		respondError(c, http.StatusNotFound, fmt.Sprintf("Doctor not found with id: %d", id))
		return
	}
	d.Status = status
	c.JSON(http.StatusOK, d)
}

func (s *Server) deleteDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid doctor id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.doctors[id]
	if !ok {
		respondError(c, http.StatusNotFound, fmt.Sprintf("Doctor not found with id: %d", id))
		return
	}
	delete(s.doctors, id)
	delete(s.users, d.UserID)
	c.Status(http.StatusNoContent)
}
