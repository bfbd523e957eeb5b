package service

import (
	"context"
	"log/slog"
	"time"

	"golden9_club/internal/domain/model"
	"golden9_club/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

// LeaderboardService serves the points ranking. Redis holds a sorted-set cache
// with a bounded staleness window; the ranking is rebuilt from PostgreSQL when
// the cache is empty or expired. With no Redis client the service reads the
// ranking straight from the database.
type LeaderboardService struct {
	userRepo repository.UserRepository
	rdb      *redis.Client
	key      string
	nameKey  string
	ttl      time.Duration
}

func NewLeaderboardService(userRepo repository.UserRepository, rdb *redis.Client, key string, ttl time.Duration) *LeaderboardService {
	return &LeaderboardService{
		userRepo: userRepo,
		rdb:      rdb,
		key:      key,
		nameKey:  key + ":usernames",
		ttl:      ttl,
	}
}

func (s *LeaderboardService) Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	if s.rdb == nil {
		return s.fromDatabase(ctx, limit)
	}

	size, err := s.rdb.ZCard(ctx, s.key).Result()
	if err != nil {
		slog.Warn("leaderboard cache unavailable, reading from database", "error", err)
		return s.fromDatabase(ctx, limit)
	}
	if size == 0 {
		if err := s.rebuild(ctx); err != nil {
			slog.Warn("leaderboard rebuild failed, reading from database", "error", err)
			return s.fromDatabase(ctx, limit)
		}
	}

	members, err := s.rdb.ZRevRangeWithScores(ctx, s.key, 0, int64(limit-1)).Result()
	if err != nil {
		slog.Warn("leaderboard cache read failed, reading from database", "error", err)
		return s.fromDatabase(ctx, limit)
	}
	if len(members) == 0 {
		return []model.LeaderboardEntry{}, nil
	}

	ids := make([]string, len(members))
	for i, m := range members {
		ids[i], _ = m.Member.(string)
	}
	names, err := s.rdb.HMGet(ctx, s.nameKey, ids...).Result()
	if err != nil {
		slog.Warn("leaderboard username lookup failed, reading from database", "error", err)
		return s.fromDatabase(ctx, limit)
	}

	entries := make([]model.LeaderboardEntry, 0, len(members))
	for i, m := range members {
		username := ""
		if i < len(names) {
			username, _ = names[i].(string)
		}
		entries = append(entries, model.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   ids[i],
			Username: username,
			Points:   int(m.Score),
		})
	}
	return entries, nil
}

// SetScore writes a point change through to the cached ranking. A cold cache
// is left alone; the next read rebuilds it wholesale.
func (s *LeaderboardService) SetScore(ctx context.Context, user *model.User) {
	if s.rdb == nil {
		return
	}
	size, err := s.rdb.ZCard(ctx, s.key).Result()
	if err != nil || size == 0 {
		return
	}
	pipe := s.rdb.TxPipeline()
	pipe.ZAdd(ctx, s.key, redis.Z{Score: float64(user.Points), Member: user.ID})
	pipe.HSet(ctx, s.nameKey, user.ID, user.Username)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("leaderboard write-through failed", "user_id", user.ID, "error", err)
	}
}

func (s *LeaderboardService) RemoveScore(ctx context.Context, userID string) {
	if s.rdb == nil {
		return
	}
	pipe := s.rdb.TxPipeline()
	pipe.ZRem(ctx, s.key, userID)
	pipe.HDel(ctx, s.nameKey, userID)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("leaderboard removal failed", "user_id", userID, "error", err)
	}
}

func (s *LeaderboardService) rebuild(ctx context.Context) error {
	users, err := s.userRepo.ListByPoints(ctx, maxLeaderboardSize)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}

	members := make([]redis.Z, len(users))
	names := make([]interface{}, 0, len(users)*2)
	for i, u := range users {
		members[i] = redis.Z{Score: float64(u.Points), Member: u.ID}
		names = append(names, u.ID, u.Username)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, s.key, s.nameKey)
	pipe.ZAdd(ctx, s.key, members...)
	pipe.HSet(ctx, s.nameKey, names...)
	pipe.Expire(ctx, s.key, s.ttl)
	pipe.Expire(ctx, s.nameKey, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *LeaderboardService) fromDatabase(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	users, err := s.userRepo.ListByPoints(ctx, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]model.LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = model.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   u.ID,
			Username: u.Username,
			Points:   u.Points,
		}
	}
	return entries, nil
}
