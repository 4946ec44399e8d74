package fights

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	keyPrefix = "fight:"
	endedKey  = "fights:ended"

	// DefaultTTL is how long a record is kept when no TTL is configured
	DefaultTTL = 7 * 24 * time.Hour
)

// Data is the stored form of a fight record
type Data struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Winner    string       `json:"winner,omitempty"`
	ElapsedNS int64        `json:"elapsed_ns"`
	Members   []MemberData `json:"members"`
	EndedAt   time.Time    `json:"ended_at"`
}

// MemberData is the stored form of a member record
type MemberData struct {
	ActorID   string  `json:"actor_id"`
	Name      string  `json:"name"`
	Faction   string  `json:"faction"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`
	Alive     bool    `json:"alive"`
}

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisConfig holds configuration for the Redis repository
type RedisConfig struct {
	Client redis.UniversalClient

	// TTL expires stored records. Defaults to DefaultTTL.
	TTL time.Duration
}

// NewRedis creates a Redis backed fight record repository
func NewRedis(cfg *RedisConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepo{
		client: cfg.Client,
		ttl:    ttl,
	}
}

func recordKey(id string) string {
	return keyPrefix + id
}

func (r *redisRepo) Create(ctx context.Context, record *entities.FightRecord) error {
	if record == nil {
		return simerr.InvalidArgument("record cannot be nil")
	}
	if record.ID == "" {
		return simerr.InvalidArgument("record ID is required")
	}

	jsonData, err := json.Marshal(toData(record))
	if err != nil {
		return simerr.Wrap(err, "failed to marshal fight record")
	}

	// The record and its index entry land together. NX on both leaves an existing
	// record and its score untouched.
	pipe := r.client.TxPipeline()
	created := pipe.SetNX(ctx, recordKey(record.ID), string(jsonData), r.ttl)
	pipe.ZAddNX(ctx, endedKey, redis.Z{
		Score:  float64(record.EndedAt.UnixMilli()),
		Member: record.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return simerr.Wrapf(err, "failed to store fight record %s", record.ID)
	}

	if !created.Val() {
		return simerr.AlreadyExistsf("fight record %s already exists", record.ID)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.FightRecord, error) {
	jsonData, err := r.client.Get(ctx, recordKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, simerr.NotFoundf("fight record %s not found", id)
		}
		return nil, simerr.Wrapf(err, "failed to get fight record %s", id)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, simerr.Wrapf(err, "failed to unmarshal fight record %s", id)
	}

	return fromData(&data), nil
}

// ListRecent reads the newest IDs from the index and fetches the records concurrently.
// IDs whose record already expired are dropped from the index.
func (r *redisRepo) ListRecent(ctx context.Context, limit int) ([]*entities.FightRecord, error) {
	if limit <= 0 {
		return nil, simerr.InvalidArgumentf("limit must be positive, got %d", limit)
	}

	ids, err := r.client.ZRevRange(ctx, endedKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, simerr.Wrap(err, "failed to list fight records")
	}

	records := make([]*entities.FightRecord, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			record, err := r.Get(gctx, id)
			if err != nil {
				if simerr.IsNotFound(err) {
					return nil
				}
				return simerr.Wrapf(err, "failed to list fight record %s", id)
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*entities.FightRecord, 0, len(records))
	var stale []any
	for i, record := range records {
		if record == nil {
			stale = append(stale, ids[i])
			continue
		}
		out = append(out, record)
	}

	if len(stale) > 0 {
		if err := r.client.ZRem(ctx, endedKey, stale...).Err(); err != nil {
			return nil, simerr.Wrap(err, "failed to prune expired fight records")
		}
	}

	return out, nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, recordKey(id))
	pipe.ZRem(ctx, endedKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return simerr.Wrapf(err, "failed to delete fight record %s", id)
	}

	if del.Val() == 0 {
		return simerr.NotFoundf("fight record %s not found", id)
	}

	return nil
}

func toData(record *entities.FightRecord) *Data {
	if record == nil {
		return nil
	}

	members := make([]MemberData, len(record.Members))
	for i, m := range record.Members {
		members[i] = MemberData{
			ActorID:   m.ActorID,
			Name:      m.Name,
			Faction:   string(m.Faction),
			Health:    m.Health,
			MaxHealth: m.MaxHealth,
			Alive:     m.Alive,
		}
	}

	return &Data{
		ID:        record.ID,
		Name:      record.Name,
		Winner:    string(record.Winner),
		ElapsedNS: record.Elapsed.Nanoseconds(),
		Members:   members,
		EndedAt:   record.EndedAt,
	}
}

func fromData(data *Data) *entities.FightRecord {
	if data == nil {
		return nil
	}

	members := make([]entities.MemberRecord, len(data.Members))
	for i, m := range data.Members {
		members[i] = entities.MemberRecord{
			ActorID:   m.ActorID,
			Name:      m.Name,
			Faction:   entities.Faction(m.Faction),
			Health:    m.Health,
			MaxHealth: m.MaxHealth,
			Alive:     m.Alive,
		}
	}

	return &entities.FightRecord{
		ID:      data.ID,
		Name:    data.Name,
		Winner:  entities.Faction(data.Winner),
		Elapsed: time.Duration(data.ElapsedNS),
		Members: members,
		EndedAt: data.EndedAt,
	}
}
