package models

// BookingStats is the dashboard summary returned by GET /bookings/stats.
type BookingStats struct {
	Total        int64            `json:"total"`
	ByStatus     map[string]int64 `json:"byStatus"`
	Today        int64            `json:"today"`
	UpcomingWeek int64            `json:"upcomingWeek"`
	Revenue      float64          `json:"revenue"` // sum of non-cancelled booking amounts
}
