package mockapi

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
)

// Server is an in-memory implementation of the super-admin REST contract,
// used as the backend double in tests and by the `mock` command for local
// development. Error bodies follow the real backend's shape.
type Server struct {
	mu         sync.Mutex
	users      map[int64]*userRecord
	doctors    map[int64]*model.Doctor
	nextUserID int64
	nextDoctor int64
	engine     *gin.Engine
}

type userRecord struct {
	model.User
	passwordHash []byte
}

// NewServer builds a server with empty collections.
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		users:      make(map[int64]*userRecord),
		doctors:    make(map[int64]*model.Doctor),
		nextUserID: 1,
		nextDoctor: 1,
	}
	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api/super-admin")
	{
		api.GET("/dashboard/stats", s.getStats)

		users := api.Group("/users")
		{
			users.GET("", s.listUsers)
			users.GET("/:id", s.getUser)
			users.GET("/role/:role", s.listUsersByRole)
			users.POST("", s.createUser)
			users.PATCH("/:id/status", s.updateUserStatus)
			users.DELETE("/:id", s.deleteUser)
		}

		doctors := api.Group("/doctors")
		{
			doctors.GET("", s.listDoctors)
			doctors.GET("/:id", s.getDoctor)
			doctors.GET("/specialization/:spec", s.listDoctorsBySpecialization)
			doctors.POST("/onboard", s.onboardDoctor)
			doctors.PATCH("/:id/status", s.updateDoctorStatus)
			doctors.DELETE("/:id", s.deleteDoctor)
		}
	}
}

// Handler exposes the router for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until the process exits.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// respondError writes the backend's error body shape.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"status":    status,
		"error":     http.StatusText(status),
		"message":   message,
	})
}

func (s *Server) getStats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := model.DashboardStats{TotalDoctors: len(s.doctors)}
	for _, u := range s.users {
		stats.TotalUsers++
		if u.Role == model.RolePatient {
			stats.TotalPatients++
		}
		if u.Status == model.StatusActive {
			stats.ActiveUsers++
		}
		if u.Status == model.StatusPending {
			stats.PendingUsers++
		}
	}
	for _, d := range s.doctors {
		if d.Status == model.StatusActive {
			stats.ActiveDoctors++
		}
	}
	c.JSON(http.StatusOK, stats)
}

// sortedUsers returns users in id order so listings are stable. Callers
// hold the lock.
func (s *Server) sortedUsers() []model.User {
	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u.User)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (s *Server) sortedDoctors() []model.Doctor {
	doctors := make([]model.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		doctors = append(doctors, *d)
	}
	sort.Slice(doctors, func(i, j int) bool { return doctors[i].ID < doctors[j].ID })
	return doctors
}
