package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/ichewm/MedicalBible-sub005/internal/config"
	md "github.com/ichewm/MedicalBible-sub005/internal/models"
	"go.uber.org/zap"
)

const (
	statusNotFound = "not_found"
	statusRevoked  = "revoked"
	statusReplay   = "replay"
	statusAdvanced = "advanced"
)

// advanceScript is the atomic read-modify-write at the heart of rotation.
// It compares the presented index against the live one and either advances
// the chain or flips the revocation latch, in a single EVAL so two racing
// rotations on the same family are strictly serialized.
const advanceScript = `
local idx = redis.call("HGET", KEYS[1], "current_index")
if not idx then
  return {"not_found", "0"}
end
if redis.call("HGET", KEYS[1], "is_revoked") == "1" then
  return {"revoked", idx}
end
if idx ~= ARGV[1] then
  redis.call("HSET", KEYS[1], "is_revoked", "1", "revoked_reason", ARGV[3])
  return {"replay", idx}
end
local next = tonumber(idx) + 1
local chain = redis.call("HGET", KEYS[1], "chain")
redis.call("HSET", KEYS[1], "current_index", tostring(next), "chain", chain .. "," .. ARGV[2])
return {"advanced", tostring(next)}
`

var advanceLua = redis.NewScript(advanceScript)

// revokeScript sets the one-way revocation latch, drops the family from the
// owner's active index and leaves a marker keyed by family id with the
// remaining lifetime. Absent families only get the SREM, making the call
// idempotent.
const revokeScript = `
local existed = redis.call("EXISTS", KEYS[1])
redis.call("SREM", KEYS[2], ARGV[1])
if existed == 1 then
  redis.call("HSET", KEYS[1], "is_revoked", "1", "revoked_reason", ARGV[2])
  local ttl = redis.call("PTTL", KEYS[1])
  if ttl > 0 then
    redis.call("SET", KEYS[3], "1", "PX", ttl)
  end
end
return existed
`

var revokeLua = redis.NewScript(revokeScript)

type Store struct {
	cli *redis.Client
}

func New(conf config.RedisConfig) *Store {
	cli := redis.NewClient(
		&redis.Options{
			Addr:         conf.Addr,
			Password:     conf.Pass,
			DialTimeout:  config.DefaultStoreTimeout,
			ReadTimeout:  config.DefaultStoreTimeout,
			WriteTimeout: config.DefaultStoreTimeout,
		},
	)

	if err := cli.Ping(context.Background()).Err(); err != nil {
		zap.L().Fatal("failed to connect to redis", zap.Error(err))
	}

	return &Store{cli: cli}
}

func (s *Store) Close() error {
	return s.cli.Close()
}

func familyKey(familyID uuid.UUID) string {
	return config.FamilyKeyPrefix + familyID.String()
}

func tokenMetaKey(tokenID uuid.UUID) string {
	return config.TokenMetaKeyPrefix + tokenID.String()
}

func userFamiliesKey(userID uuid.UUID) string {
	return config.UserFamiliesKeyPrefix + userID.String()
}

func revokedMarkerKey(familyID uuid.UUID) string {
	return config.FamilyRevokedKeyPrefix + familyID.String()
}

// CreateFamily writes the family hash with the given TTL and indexes it
// under the owning user.
func (s *Store) CreateFamily(ctx context.Context, fam *md.TokenFamily, ttl time.Duration) error {
	const op = "cache.CreateFamily.redis"

	fields := map[string]any{
		"user_id":        fam.UserID.String(),
		"device_id":      fam.DeviceID,
		"chain":          joinChain(fam.TokenChain),
		"current_index":  strconv.Itoa(fam.CurrentIndex),
		"is_revoked":     boolField(fam.IsRevoked),
		"revoked_reason": fam.RevokedReason,
		"expires_at":     strconv.FormatInt(fam.ExpiresAt.Unix(), 10),
	}

	_, err := s.cli.TxPipelined(
		ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, familyKey(fam.FamilyID), fields)
			pipe.PExpire(ctx, familyKey(fam.FamilyID), ttl)
			pipe.SAdd(ctx, userFamiliesKey(fam.UserID), fam.FamilyID.String())
			pipe.PExpire(ctx, userFamiliesKey(fam.UserID), ttl)
			return nil
		},
	)
	if err != nil {
		zap.L().Error(
			"failed to create family in cache",
			zap.String("op", op),
			zap.String("familyID", fam.FamilyID.String()),
			zap.Error(err),
		)

		return fmt.Errorf("cache: %w", err)
	}

	return nil
}

func (s *Store) GetFamily(ctx context.Context, familyID uuid.UUID) (*md.TokenFamily, error) {
	const op = "cache.GetFamily.redis"

	fields, err := s.cli.HGetAll(ctx, familyKey(familyID)).Result()
	if err != nil {
		zap.L().Error(
			"failed to get family from cache",
			zap.String("op", op),
			zap.String("familyID", familyID.String()),
			zap.Error(err),
		)

		return nil, fmt.Errorf("cache: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrNotFound
	}

	return familyFromFields(familyID, fields)
}

// AdvanceFamily atomically compares presentedIndex against the live index
// and appends newTokenID on match. On mismatch the family is revoked inside
// the same script and ErrIndexConflict is returned.
func (s *Store) AdvanceFamily(
	ctx context.Context,
	familyID uuid.UUID,
	presentedIndex int,
	newTokenID uuid.UUID,
	revokeReason string,
) (int, error) {
	const op = "cache.AdvanceFamily.redis"

	raw, err := advanceLua.Run(
		ctx,
		s.cli,
		[]string{familyKey(familyID)},
		strconv.Itoa(presentedIndex),
		newTokenID.String(),
		revokeReason,
	).Result()
	if err != nil {
		zap.L().Error(
			"advance script failed",
			zap.String("op", op),
			zap.String("familyID", familyID.String()),
			zap.Error(err),
		)

		return 0, fmt.Errorf("cache: %w", err)
	}

	reply, ok := raw.([]any)
	if !ok || len(reply) != 2 {
		return 0, fmt.Errorf("cache: unexpected advance script reply %v", raw)
	}

	status, _ := reply[0].(string)
	idxStr, _ := reply[1].(string)
	idx, _ := strconv.Atoi(idxStr)

	switch status {
	case statusAdvanced:
		return idx, nil
	case statusNotFound:
		return 0, ErrNotFound
	case statusRevoked:
		return idx, ErrFamilyRevoked
	case statusReplay:
		return idx, ErrIndexConflict
	default:
		return 0, fmt.Errorf("cache: unknown advance script status %q", status)
	}
}

// RevokeFamily sets the sticky revocation latch and removes the family from
// the user's active index. Calling it again, or on an absent family, is a
// no-op.
func (s *Store) RevokeFamily(
	ctx context.Context,
	familyID, userID uuid.UUID,
	reason string,
) error {
	const op = "cache.RevokeFamily.redis"

	err := revokeLua.Run(
		ctx,
		s.cli,
		[]string{
			familyKey(familyID),
			userFamiliesKey(userID),
			revokedMarkerKey(familyID),
		},
		familyID.String(),
		reason,
	).Err()
	if err != nil {
		zap.L().Error(
			"revoke script failed",
			zap.String("op", op),
			zap.String("familyID", familyID.String()),
			zap.Error(err),
		)

		return fmt.Errorf("cache: %w", err)
	}

	return nil
}

func (s *Store) ListUserFamilies(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const op = "cache.ListUserFamilies.redis"

	members, err := s.cli.SMembers(ctx, userFamiliesKey(userID)).Result()
	if err != nil {
		zap.L().Error(
			"failed to list user families",
			zap.String("op", op),
			zap.String("userID", userID.String()),
			zap.Error(err),
		)

		return nil, fmt.Errorf("cache: %w", err)
	}

	res := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			zap.L().Warn(
				"skipping malformed family id in user index",
				zap.String("op", op),
				zap.String("member", m),
			)
			continue
		}

		res = append(res, id)
	}

	return res, nil
}

func (s *Store) SetTokenMeta(ctx context.Context, meta *md.TokenMeta, ttl time.Duration) error {
	const op = "cache.SetTokenMeta.redis"

	bytes, err := json.Marshal(meta)
	if err != nil {
		return err
	}

	if err = s.cli.Set(ctx, tokenMetaKey(meta.TokenID), bytes, ttl).Err(); err != nil {
		zap.L().Error(
			"failed to set token meta",
			zap.String("op", op),
			zap.String("tokenID", meta.TokenID.String()),
			zap.Error(err),
		)

		return fmt.Errorf("cache: %w", err)
	}

	return nil
}

func (s *Store) GetTokenMeta(ctx context.Context, tokenID uuid.UUID) (*md.TokenMeta, error) {
	const op = "cache.GetTokenMeta.redis"

	bytes, err := s.cli.Get(ctx, tokenMetaKey(tokenID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	} else if err != nil {
		zap.L().Error(
			"failed to get token meta",
			zap.String("op", op),
			zap.String("tokenID", tokenID.String()),
			zap.Error(err),
		)

		return nil, fmt.Errorf("cache: %w", err)
	}

	meta := &md.TokenMeta{}
	if err = json.Unmarshal(bytes, meta); err != nil {
		return nil, err
	}

	return meta, nil
}

func joinChain(chain []uuid.UUID) string {
	parts := make([]string, 0, len(chain))
	for _, id := range chain {
		parts = append(parts, id.String())
	}

	return strings.Join(parts, ",")
}

func parseChain(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	chain := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, err
		}

		chain = append(chain, id)
	}

	return chain, nil
}

func boolField(v bool) string {
	if v {
		return "1"
	}

	return "0"
}

func familyFromFields(familyID uuid.UUID, fields map[string]string) (*md.TokenFamily, error) {
	userID, err := uuid.Parse(fields["user_id"])
	if err != nil {
		return nil, fmt.Errorf("cache: malformed family record: %w", err)
	}

	chain, err := parseChain(fields["chain"])
	if err != nil {
		return nil, fmt.Errorf("cache: malformed family chain: %w", err)
	}

	idx, err := strconv.Atoi(fields["current_index"])
	if err != nil {
		return nil, fmt.Errorf("cache: malformed family index: %w", err)
	}

	expUnix, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache: malformed family expiry: %w", err)
	}

	return &md.TokenFamily{
		FamilyID:      familyID,
		UserID:        userID,
		DeviceID:      fields["device_id"],
		TokenChain:    chain,
		CurrentIndex:  idx,
		IsRevoked:     fields["is_revoked"] == "1",
		RevokedReason: fields["revoked_reason"],
		ExpiresAt:     time.Unix(expUnix, 0),
	}, nil
}
