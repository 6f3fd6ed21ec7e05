package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hasanarofid/lms-assessment/config"
	"github.com/hasanarofid/lms-assessment/internal/dto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ErrMiss is returned when the key is absent or no cache backend is configured.
var ErrMiss = errors.New("quiz cache miss")

// Quiz content is immutable while a session runs, so a short TTL is enough to
// absorb repeated session starts without serving stale edits for long.
const quizTTL = 5 * time.Minute

// NewRedisClient returns nil when no address is configured; the cache layer
// degrades to a pass-through in that case.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR not set, quiz cache disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
}

// QuizCache stores the sanitized quiz payload (never the correctness flags,
// which are stripped before the DTO is built).
type QuizCache interface {
	Get(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error)
	Set(ctx context.Context, quiz *dto.QuizDetailDTO) error
}

type quizCache struct {
	client *redis.Client
}

func NewQuizCache(client *redis.Client) QuizCache {
	return &quizCache{client: client}
}

func quizKey(id uint) string {
	return fmt.Sprintf("quiz:%d", id)
}

func (c *quizCache) Get(ctx context.Context, quizID uint) (*dto.QuizDetailDTO, error) {
	if c.client == nil {
		return nil, ErrMiss
	}
	data, err := c.client.Get(ctx, quizKey(quizID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, err
	}
	var quiz dto.QuizDetailDTO
	if err := json.Unmarshal([]byte(data), &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *quizCache) Set(ctx context.Context, quiz *dto.QuizDetailDTO) error {
	if c.client == nil {
		return nil
	}
	data, err := json.Marshal(quiz)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, quizKey(quiz.ID), data, quizTTL).Err()
}
