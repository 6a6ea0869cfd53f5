package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	tournamentDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/tournament"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	"github.com/ahmedroou/scoreverse0-sub000/internal/statuses"
)

type TournamentRepository struct {
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewTournamentRepository(log *zap.SugaredLogger, mongo *mongo.Database) *TournamentRepository {
	return &TournamentRepository{log: log, mongo: mongo}
}

func (t *TournamentRepository) InsertTournament(ctx context.Context, newTournament tournamentDomain.Tournament) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := t.mongo.Collection("tournaments").InsertOne(ctx, newTournament)
	if err != nil {
		t.log.Errorf("failed to insert tournament: %v", err)
		return err
	}
	return nil
}

func (t *TournamentRepository) GetTournamentsByOwner(ctx context.Context, ownerID string) ([]tournamentDomain.Tournament, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := t.mongo.Collection("tournaments").Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		t.log.Error(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []tournamentDomain.Tournament
	if err := cursor.All(ctx, &result); err != nil {
		t.log.Error(err)
		return nil, err
	}
	return result, nil
}

func (t *TournamentRepository) GetTournamentByID(ctx context.Context, ownerID string, tournamentID string) (tournamentDomain.Tournament, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": tournamentID, "owner_id": ownerID}

	var result tournamentDomain.Tournament
	err := t.mongo.Collection("tournaments").FindOne(ctx, filter).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return tournamentDomain.Tournament{}, errs.ErrTournamentNotFound
	} else if err != nil {
		t.log.Error(err)
		return tournamentDomain.Tournament{}, err
	}
	return result, nil
}

// CompleteTournament is the single irreversible transition: the filter
// requires active status, so a tournament can only be completed once no
// matter how many monitor runs race over it.
func (t *TournamentRepository) CompleteTournament(ctx context.Context, ownerID string, tournamentID string, winnerID string, completedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":      tournamentID,
		"owner_id": ownerID,
		"status":   statuses.StatusActive,
	}
	update := bson.M{"$set": bson.M{
		"status":       statuses.StatusCompleted,
		"winner_id":    winnerID,
		"completed_at": completedAt,
	}}

	res, err := t.mongo.Collection("tournaments").UpdateOne(ctx, filter, update)
	if err != nil {
		t.log.Errorf("failed to complete tournament %s: %v", tournamentID, err)
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrTournamentNotFound
	}
	return nil
}
