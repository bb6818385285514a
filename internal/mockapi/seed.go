package mockapi

import (
	"time"

	"github.com/mhdirfanpn/panadol-platform-client/internal/model"
)

// SeedUsers inserts fixture users directly, assigning ids and timestamps
// where absent. Meant for tests and the mock command's demo data.
func (s *Server) SeedUsers(users ...model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		if u.ID == 0 {
			u.ID = s.nextUserID
		}
		if u.ID >= s.nextUserID {
			s.nextUserID = u.ID + 1
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = time.Now().UTC().Truncate(time.Second)
		}
		s.users[u.ID] = &userRecord{User: u}
	}
}

// SeedDoctors inserts fixture doctors directly.
func (s *Server) SeedDoctors(doctors ...model.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range doctors {
		if d.ID == 0 {
			d.ID = s.nextDoctor
		}
		if d.ID >= s.nextDoctor {
			s.nextDoctor = d.ID + 1
		}
		if d.CreatedAt.IsZero() {
			d.CreatedAt = time.Now().UTC().Truncate(time.Second)
		}
		doctor := d
		s.doctors[doctor.ID] = &doctor
	}
}
