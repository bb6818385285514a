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

type createUserBody struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role" binding:"required"`
}

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.sortedUsers())
}

func (s *Server) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		respondError(c, http.StatusNotFound, fmt.Sprintf("User not found with id: %d", id))
		return
	}
	c.JSON(http.StatusOK, u.User)
}

func (s *Server) listUsersByRole(c *gin.Context) {
	role := model.Role(c.Param("role"))
	if !role.Valid() {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid role: %s", c.Param("role")))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make([]model.User, 0)
	for _, u := range s.sortedUsers() {
		if u.Role == role {
			matched = append(matched, u)
		}
	}
	c.JSON(http.StatusOK, matched)
}

func (s *Server) createUser(c *gin.Context) {
	var body createUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	role := model.Role(body.Role)
	if !role.Valid() {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid role: %s", body.Role))
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

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to process password")
		return
	}

	user := &userRecord{
		User: model.User{
			ID:          s.nextUserID,
			FirstName:   body.FirstName,
			LastName:    body.LastName,
			Email:       body.Email,
			Username:    body.Username,
			PhoneNumber: body.PhoneNumber,
			Role:        role,
			Status:      model.StatusActive,
			CreatedAt:   time.Now().UTC().Truncate(time.Second),
		},
		passwordHash: hash,
	}
	s.nextUserID++
	s.users[user.ID] = user
	c.JSON(http.StatusCreated, user.User)
}

func (s *Server) updateUserStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}
	status := model.Status(c.Query("status"))
	if !status.Valid() {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid status: %s", c.Query("status")))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		respondError(c, http.StatusNotFound, fmt.Sprintf("User not found with id: %d", id))
		return
	}
	u.Status = status
	c.JSON(http.StatusOK, u.User)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		respondError(c, http.StatusNotFound, fmt.Sprintf("User not found with id: %d", id))
		return
	}
	for _, d := range s.doctors {
		if d.UserID == id {
			respondError(c, http.StatusConflict, "User has an active doctor profile")
			return
		}
	}
	delete(s.users, id)
	c.Status(http.StatusNoContent)
}
