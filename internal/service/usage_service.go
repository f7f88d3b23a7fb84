package service

import (
	"context"
	"fmt"
	"time"

	"ai-chatapp-be/internal/pkg/logger"
	"ai-chatapp-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// IUsageLimiter gates message exchanges against a per-user daily budget.
type IUsageLimiter interface {
	// CheckAndCount increments today's counter and fails with a 429 error
	// when the user is over budget. Redis being down never blocks chat:
	// the limiter fails open.
	CheckAndCount(ctx context.Context, userID uuid.UUID) error
}

type usageLimiter struct {
	rdb        *redis.Client
	dailyLimit int
	logger     logger.ILogger
}

func NewUsageLimiter(rdb *redis.Client, dailyLimit int, log logger.ILogger) IUsageLimiter {
	return &usageLimiter{
		rdb:        rdb,
		dailyLimit: dailyLimit,
		logger:     log,
	}
}

func usageKey(userID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("chat:usage:%s:%s", userID, now.Format("2006-01-02"))
}

func (l *usageLimiter) CheckAndCount(ctx context.Context, userID uuid.UUID) error {
	if l.rdb == nil || l.dailyLimit <= 0 {
		return nil
	}

	now := time.Now()
	key := usageKey(userID, now)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("UsageLimiter", "Redis unavailable, skipping limit check", map[string]interface{}{"error": err.Error()})
		return nil
	}

	if count == 1 {
		// Counter lives until local midnight.
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
		l.rdb.Expire(ctx, key, time.Until(midnight))
	}

	if count > int64(l.dailyLimit) {
		return serverutils.ErrTooManyRequests("Daily message limit reached")
	}

	return nil
}
