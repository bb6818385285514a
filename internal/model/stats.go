package model

// DashboardStats is the aggregate snapshot served by GET /dashboard/stats.
// It is fetched fresh on every dashboard visit and never cached.
type DashboardStats struct {
	TotalUsers    int `json:"totalUsers"`
	TotalDoctors  int `json:"totalDoctors"`
	TotalPatients int `json:"totalPatients"`
	ActiveUsers   int `json:"activeUsers"`
	ActiveDoctors int `json:"activeDoctors"`
	PendingUsers  int `json:"pendingUsers"`
}
