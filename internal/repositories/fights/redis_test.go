package fights

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/skirmish/internal/entities"
	simerr "github.com/KirkDiggler/skirmish/internal/errors"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
	ctx        context.Context
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(&RedisConfig{Client: s.mockClient, TTL: time.Hour})
	s.ctx = context.Background()
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func testRecord(id string, endedAt time.Time) *entities.FightRecord {
	return &entities.FightRecord{
		ID:      id,
		Name:    "arena " + id,
		Winner:  entities.FactionPlayer,
		Elapsed: 42 * time.Second,
		Members: []entities.MemberRecord{
			{ActorID: id + "-player", Name: "Player", Faction: entities.FactionPlayer, Health: 60, MaxHealth: 100, Alive: true},
			{ActorID: id + "-enemy", Name: "Enemy", Faction: entities.FactionEnemy, Health: 0, MaxHealth: 100},
		},
		EndedAt: endedAt,
	}
}

func (s *RedisRepoTestSuite) marshal(record *entities.FightRecord) string {
	data, err := json.Marshal(toData(record))
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) assertRecord(expected, actual *entities.FightRecord) {
	s.Require().NotNil(actual)
	s.True(expected.EndedAt.Equal(actual.EndedAt))

	e, a := *expected, *actual
	e.EndedAt, a.EndedAt = time.Time{}, time.Time{}
	s.Equal(e, a)
}

func (s *RedisRepoTestSuite) TestCreate() {
	endedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	record := testRecord("f1", endedAt)

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSetNX("fight:f1", s.marshal(record), time.Hour).SetVal(true)
	s.mock.ExpectZAddNX("fights:ended", redis.Z{Score: float64(endedAt.UnixMilli()), Member: "f1"}).SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Create(s.ctx, record))
}

func (s *RedisRepoTestSuite) TestCreate_KeepsSubSecondElapsed() {
	record := testRecord("f1", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	record.Elapsed = 42*time.Second + 15625*time.Microsecond + 7

	var data Data
	s.Require().NoError(json.Unmarshal([]byte(s.marshal(record)), &data))
	s.Equal(record.Elapsed.Nanoseconds(), data.ElapsedNS)
	s.Equal(record.Elapsed, fromData(&data).Elapsed)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	record := testRecord("f1", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSetNX("fight:f1", s.marshal(record), time.Hour).SetVal(false)
	s.mock.ExpectZAddNX("fights:ended", redis.Z{Score: float64(record.EndedAt.UnixMilli()), Member: "f1"}).SetVal(0)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.Create(s.ctx, record)
	s.True(simerr.Is(err, simerr.CodeAlreadyExists))
}

func (s *RedisRepoTestSuite) TestCreate_DependencyError() {
	record := testRecord("f1", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	s.mock.ExpectTxPipeline()
	s.mock.ExpectSetNX("fight:f1", s.marshal(record), time.Hour).SetErr(errors.New("redis error"))
	s.mock.ExpectZAddNX("fights:ended", redis.Z{Score: float64(record.EndedAt.UnixMilli()), Member: "f1"}).SetVal(1)
	s.mock.ExpectTxPipelineExec()

	err := s.repo.Create(s.ctx, record)
	s.Error(err)
	s.False(simerr.Is(err, simerr.CodeAlreadyExists))
}

func (s *RedisRepoTestSuite) TestCreate_InvalidInput() {
	s.True(simerr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))
	s.True(simerr.IsInvalidArgument(s.repo.Create(s.ctx, &entities.FightRecord{})))
}

func (s *RedisRepoTestSuite) TestGet() {
	record := testRecord("f1", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s.mock.ExpectGet("fight:f1").SetVal(s.marshal(record))

	got, err := s.repo.Get(s.ctx, "f1")
	s.Require().NoError(err)
	s.assertRecord(record, got)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("fight:missing").RedisNil()

	_, err := s.repo.Get(s.ctx, "missing")
	s.True(simerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGet_CorruptData() {
	s.mock.ExpectGet("fight:f1").SetVal("{not json")

	_, err := s.repo.Get(s.ctx, "f1")
	s.Error(err)
	s.False(simerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestListRecent() {
	newer := testRecord("f2", time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	older := testRecord("f1", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	// records are fetched concurrently
	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectZRevRange("fights:ended", 0, 9).SetVal([]string{"f2", "gone", "f1"})
	s.mock.ExpectGet("fight:f2").SetVal(s.marshal(newer))
	s.mock.ExpectGet("fight:gone").RedisNil()
	s.mock.ExpectGet("fight:f1").SetVal(s.marshal(older))
	s.mock.ExpectZRem("fights:ended", "gone").SetVal(1)

	got, err := s.repo.ListRecent(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.assertRecord(newer, got[0])
	s.assertRecord(older, got[1])
}

func (s *RedisRepoTestSuite) TestListRecent_InvalidLimit() {
	_, err := s.repo.ListRecent(s.ctx, 0)
	s.True(simerr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("fight:f1").SetVal(1)
	s.mock.ExpectZRem("fights:ended", "f1").SetVal(1)
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.Delete(s.ctx, "f1"))
}

func (s *RedisRepoTestSuite) TestDelete_NotFound() {
	s.mock.ExpectTxPipeline()
	s.mock.ExpectDel("fight:f1").SetVal(0)
	s.mock.ExpectZRem("fights:ended", "f1").SetVal(0)
	s.mock.ExpectTxPipelineExec()

	s.True(simerr.IsNotFound(s.repo.Delete(s.ctx, "f1")))
}
