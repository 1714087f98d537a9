package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"appointment-editor/internal/domain/entity"
	domainRepo "appointment-editor/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisDraftKeyPrefix prefixes every stored draft key
const RedisDraftKeyPrefix = "appointment:draft:"

type draftRepository struct {
	redisClient *redis.Client
}

func NewDraftRepository(redisClient *redis.Client) domainRepo.DraftRepository {
	return &draftRepository{redisClient: redisClient}
}

func draftKey(id uuid.UUID) string {
	return RedisDraftKeyPrefix + id.String()
}

// Save overwrites the stored draft and resets its TTL
func (r *draftRepository) Save(ctx context.Context, draft *entity.AppointmentDraft, ttl time.Duration) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft %s: %w", draft.ID, err)
	}
	return r.redisClient.Set(ctx, draftKey(draft.ID), payload, ttl).Err()
}

// FindByID returns nil when the draft does not exist or has expired
func (r *draftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AppointmentDraft, error) {
	payload, err := r.redisClient.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var draft entity.AppointmentDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", id, err)
	}
	return &draft, nil
}

func (r *draftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.redisClient.Del(ctx, draftKey(id)).Err()
}
