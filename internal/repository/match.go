package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/ahmedroou/scoreverse0-sub000/internal/bootstrap"
	matchDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/match"
	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
)

// scopedMatchFilter narrows an owner's matches to one scope. Global matches
// are stored without a space_id field (omitempty), so the global filter has
// to accept both a missing field and an empty string.
func scopedMatchFilter(ownerID string, scope spaceDomain.Scope) bson.M {
	filter := bson.M{"owner_id": ownerID}
	if scope.IsGlobal() {
		filter["space_id"] = bson.M{"$in": bson.A{nil, ""}}
	} else {
		filter["space_id"] = scope.SpaceID()
	}
	return filter
}

type MatchRepository struct {
	cfg   *bootstrap.Config
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewMatchRepository(cfg *bootstrap.Config, log *zap.SugaredLogger, mongo *mongo.Database) *MatchRepository {
	return &MatchRepository{cfg: cfg, log: log, mongo: mongo}
}

func (m *MatchRepository) InsertMatch(ctx context.Context, newMatch matchDomain.Match) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.mongo.Collection("matches").InsertOne(ctx, newMatch)
	if err != nil {
		m.log.Errorf("failed to insert match: %v", err)
		return err
	}
	return nil
}

// GetMatchesByOwner returns the owner's full history, chronological.
func (m *MatchRepository) GetMatchesByOwner(ctx context.Context, ownerID string) ([]matchDomain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := m.mongo.Collection("matches").Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		m.log.Error(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []matchDomain.Match
	if err := cursor.All(ctx, &result); err != nil {
		m.log.Error(err)
		return nil, err
	}
	return result, nil
}

// GetMatchesByOwnerPaginated returns one page of the scope's matches,
// newest first, so pages stay full for space-scoped sessions.
func (m *MatchRepository) GetMatchesByOwnerPaginated(ctx context.Context, ownerID string, scope spaceDomain.Scope, pageNum int) ([]matchDomain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if pageNum < 1 {
		pageNum = 1
	}
	limit := int64(m.cfg.PageLimitMatches)
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(int64(pageNum-1) * limit).
		SetLimit(limit)

	cursor, err := m.mongo.Collection("matches").Find(ctx, scopedMatchFilter(ownerID, scope), opts)
	if err != nil {
		m.log.Error(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []matchDomain.Match
	if err := cursor.All(ctx, &result); err != nil {
		m.log.Error(err)
		return nil, err
	}
	return result, nil
}

func (m *MatchRepository) GetMatchByID(ctx context.Context, ownerID string, matchID string) (matchDomain.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": matchID, "owner_id": ownerID}

	var result matchDomain.Match
	err := m.mongo.Collection("matches").FindOne(ctx, filter).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return matchDomain.Match{}, errs.ErrMatchNotFound
	} else if err != nil {
		m.log.Error(err)
		return matchDomain.Match{}, err
	}
	return result, nil
}

// UpdateMatchResult is the correction path: winners and awards only.
func (m *MatchRepository) UpdateMatchResult(ctx context.Context, ownerID string, matchID string, winnerIDs []string, awards []matchDomain.PointsAward) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": matchID, "owner_id": ownerID}
	update := bson.M{"$set": bson.M{
		"winner_ids":     winnerIDs,
		"points_awarded": awards,
	}}

	res, err := m.mongo.Collection("matches").UpdateOne(ctx, filter, update)
	if err != nil {
		m.log.Errorf("failed to update match %s: %v", matchID, err)
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrMatchNotFound
	}
	return nil
}

// CountMatchesByGame backs the game deletion guard.
func (m *MatchRepository) CountMatchesByGame(ctx context.Context, ownerID string, gameID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := m.mongo.Collection("matches").CountDocuments(ctx, bson.M{"owner_id": ownerID, "game_id": gameID})
	if err != nil {
		m.log.Error(err)
		return 0, err
	}
	return count, nil
}
