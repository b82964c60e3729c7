package ban

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	strikeKeyPrefix = "login:strikes:"
	banKeyPrefix    = "login:ban:"
)

// Service tracks failed login attempts per client in redis and temporarily
// bans clients that cross the strike threshold. A nil *Service is a valid
// no-op, used when no REDIS_ADDR is configured.
type Service struct {
	rdb        *redis.Client
	ctx        context.Context
	maxStrikes int
	banFor     time.Duration
}

func NewService(rdb *redis.Client, ctx context.Context) *Service {
	return &Service{
		rdb:        rdb,
		ctx:        ctx,
		maxStrikes: 5,
		banFor:     15 * time.Minute,
	}
}

// RecordFailure bumps the strike counter for key and bans it once the
// threshold is reached. Strikes share the ban window's TTL.
func (s *Service) RecordFailure(key string) {
	if s == nil {
		return
	}

	strikes, err := s.rdb.Incr(s.ctx, strikeKeyPrefix+key).Result()
	if err != nil {
		log.Printf("ban: failed to record strike for %s: %v", key, err)
		return
	}
	s.rdb.Expire(s.ctx, strikeKeyPrefix+key, s.banFor)

	if strikes >= int64(s.maxStrikes) {
		if err := s.rdb.Set(s.ctx, banKeyPrefix+key, strikes, s.banFor).Err(); err != nil {
			log.Printf("ban: failed to ban %s: %v", key, err)
			return
		}
		log.Printf("ban: %s blocked after %d failed logins", key, strikes)
	}
}

// IsBanned reports whether key is currently blocked.
func (s *Service) IsBanned(key string) bool {
	if s == nil {
		return false
	}

	exists, err := s.rdb.Exists(s.ctx, banKeyPrefix+key).Result()
	if err != nil {
		log.Printf("ban: failed to check %s: %v", key, err)
		return false
	}
	return exists > 0
}

// ClearStrikes resets the counter after a successful login.
func (s *Service) ClearStrikes(key string) {
	if s == nil {
		return
	}
	if err := s.rdb.Del(s.ctx, strikeKeyPrefix+key).Err(); err != nil {
		log.Printf("ban: failed to clear strikes for %s: %v", key, err)
	}
}

// Strikes returns the current strike count for key.
func (s *Service) Strikes(key string) int {
	if s == nil {
		return 0
	}
	strikes, err := s.rdb.Get(s.ctx, strikeKeyPrefix+key).Int()
	if err != nil {
		return 0
	}
	return strikes
}
