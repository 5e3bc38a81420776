package character

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/entities/dnd5e"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/errors"
	"github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/pkg/clock"
	redisclient "github.com/duxrumyantsev-ux/DND-Manager-sub000/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	playerIndexPrefix  = "character:player:"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func characterKey(id string) string {
	return characterKeyPrefix + id
}

func playerKey(playerID string) string {
	return playerIndexPrefix + playerID
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKey(input.Character.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	stored := input.Character.Clone()
	now := r.clock.Now().Unix()
	if stored.CreatedAt == 0 {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if stored.PlayerID != "" {
		pipe.SAdd(ctx, playerKey(stored.PlayerID), stored.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	record, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Record: record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	existing, err := r.load(ctx, input.Character.ID)
	if err != nil {
		return nil, err
	}

	stored := input.Character.Clone()
	if stored.CreatedAt == 0 {
		stored.CreatedAt = existing.CreatedAt
	}
	stored.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKey(stored.ID), data, 0)

	if existing.PlayerID != stored.PlayerID {
		if existing.PlayerID != "" {
			pipe.SRem(ctx, playerKey(existing.PlayerID), stored.ID)
		}
		if stored.PlayerID != "" {
			pipe.SAdd(ctx, playerKey(stored.PlayerID), stored.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	// an undecodable record can still be removed; its index entry is
	// dropped the next time the player's characters are listed
	existing, err := r.load(ctx, input.ID)
	if err != nil && !errors.IsDataLoss(err) {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKey(input.ID))
	if existing != nil && existing.PlayerID != "" {
		pipe.SRem(ctx, playerKey(existing.PlayerID), input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerKey(input.PlayerID)
	slog.DebugContext(ctx, "listing characters by player index",
		"player_id", input.PlayerID,
		"index_key", indexKey)

	records, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list characters by player index",
			"player_id", input.PlayerID,
			"index_key", indexKey,
			"error", err.Error())
		return nil, err
	}

	return &ListByPlayerIDOutput{Records: records}, nil
}

func (r *redisRepository) ListIDs(ctx context.Context, _ ListIDsInput) (*ListIDsOutput, error) {
	var ids []string
	iter := r.client.Scan(ctx, 0, characterKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, playerIndexPrefix) {
			continue
		}
		ids = append(ids, strings.TrimPrefix(key, characterKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan character keys")
	}

	sort.Strings(ids)
	return &ListIDsOutput{IDs: ids}, nil
}

// listByIndex loads every record named in a set, dropping ids whose record is gone
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*dnd5e.PartialCharacter, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	records := make([]*dnd5e.PartialCharacter, 0, len(ids))
	for _, id := range ids {
		record, err := r.load(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "character not found, cleaning up index",
					"character_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*dnd5e.PartialCharacter, error) {
	result, err := r.client.Get(ctx, characterKey(id)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	record, err := decodeRecord(result)
	if err != nil {
		return nil, errors.CorruptRecord(err, "character", id)
	}
	if record.ID == "" {
		record.ID = id
	}
	return record, nil
}

// decodeRecord keeps numbers as json.Number so the normalizer sees what was stored
func decodeRecord(data []byte) (*dnd5e.PartialCharacter, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var record dnd5e.PartialCharacter
	if err := dec.Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}
