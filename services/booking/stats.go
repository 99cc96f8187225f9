// File: services/booking/stats.go
package booking

import (
	"context"
	"encoding/json"
	"time"

	"venuely/apperr"
	"venuely/models"
	"venuely/utils"

	"go.uber.org/zap"
)

const statsCacheKey = "stats:bookings"

// Stats returns the dashboard summary, served from Redis when a fresh copy
// exists. Cache failures fall through to the database.
func (s *DefaultBookingService) Stats(ctx context.Context) (*models.BookingStats, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var cached models.BookingStats
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	today := time.Now().Format(dateLayout)
	weekEnd := time.Now().AddDate(0, 0, 6).Format(dateLayout)
	stats, err := s.Repo.Stats(today, weekEnd)
	if err != nil {
		return nil, apperr.PersistenceError{Err: err}
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.Cache.Set(ctx, statsCacheKey, raw, utils.StatsCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache booking stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}
