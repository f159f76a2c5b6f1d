package levels

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/Esderin/Standard-of-Iron/internal/errors"
	redisclient "github.com/Esderin/Standard-of-Iron/internal/redis"
)

const (
	levelKeyPrefix = "level:"
	levelIndexKey  = "levels"

	errLevelIDEmpty = "level ID cannot be empty"
)

// RedisConfig contains configuration for the Redis level repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed level repository. Levels are stored as JSON
// under level:{id}; the set "levels" indexes their ids.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Key returns the Redis key of a level.
func Key(levelID string) string {
	return levelKeyPrefix + levelID
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Level == nil {
		return nil, errors.InvalidArgument("level is required")
	}

	level := input.Level
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", level.ID, vb)
	if level.Width <= 0 {
		vb.InvalidField("Width", "must be positive")
	}
	if level.Height <= 0 {
		vb.InvalidField("Height", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(level)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal level %s", level.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, Key(level.ID), data, 0)
	pipe.SAdd(ctx, levelIndexKey, level.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save level %s", level.ID)
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.LevelID == "" {
		return nil, errors.InvalidArgument(errLevelIDEmpty)
	}

	raw, err := r.client.Get(ctx, Key(input.LevelID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("level %s not found", input.LevelID).
				WithMeta("level_id", input.LevelID)
		}
		return nil, errors.Wrapf(err, "failed to get level %s", input.LevelID)
	}

	var level LevelData
	if err := json.Unmarshal(raw, &level); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal level data").
			WithMeta("level_id", input.LevelID)
	}

	return &GetOutput{Level: &level}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.LevelID == "" {
		return nil, errors.InvalidArgument(errLevelIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, Key(input.LevelID))
	pipe.SRem(ctx, levelIndexKey, input.LevelID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete level %s", input.LevelID)
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("level %s not found", input.LevelID).
			WithMeta("level_id", input.LevelID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, levelIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list levels")
	}

	sort.Strings(ids)
	return &ListOutput{LevelIDs: ids}, nil
}
