package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
)

const (
	tutorKeyPrefix = "tutor:"     // String: tutor:{id} -> JSON репетитора
	tutorsKey      = "tutors:all" // String: JSON списка всех репетиторов
)

func tutorKey(id int64) string {
	return tutorKeyPrefix + strconv.FormatInt(id, 10)
}

// RedisTutorCache кэш справочника репетиторов в Redis
type RedisTutorCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTutorCache(client *redis.Client, ttl time.Duration) *RedisTutorCache {
	return &RedisTutorCache{
		client: client,
		ttl:    ttl,
	}
}

// Connect создаёт клиента и проверяет соединение
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}

	return client, nil
}

func (c *RedisTutorCache) GetTutor(ctx context.Context, id int64) (*model.Tutor, bool, error) {
	var tutor model.Tutor
	ok, err := c.get(ctx, tutorKey(id), &tutor)
	if !ok {
		return nil, false, err
	}
	return &tutor, true, nil
}

func (c *RedisTutorCache) SetTutor(ctx context.Context, tutor *model.Tutor) error {
	return c.set(ctx, tutorKey(tutor.ID), tutor)
}

func (c *RedisTutorCache) GetTutors(ctx context.Context) ([]*model.Tutor, bool, error) {
	var tutors []*model.Tutor
	ok, err := c.get(ctx, tutorsKey, &tutors)
	if !ok {
		return nil, false, err
	}
	if tutors == nil {
		tutors = []*model.Tutor{}
	}
	return tutors, true, nil
}

func (c *RedisTutorCache) SetTutors(ctx context.Context, tutors []*model.Tutor) error {
	return c.set(ctx, tutorsKey, tutors)
}

// Invalidate сбрасывает запись репетитора и общий список
func (c *RedisTutorCache) Invalidate(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, tutorKey(id), tutorsKey).Err(); err != nil {
		return fmt.Errorf("invalidate tutor %d: %w", id, err)
	}
	return nil
}

func (c *RedisTutorCache) get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}

	return true, nil
}

func (c *RedisTutorCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}
