package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	playerDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/player"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
)

type PlayerRepository struct {
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewPlayerRepository(log *zap.SugaredLogger, mongo *mongo.Database) *PlayerRepository {
	return &PlayerRepository{log: log, mongo: mongo}
}

func (p *PlayerRepository) InsertPlayer(ctx context.Context, newPlayer playerDomain.Player) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := p.mongo.Collection("players").InsertOne(ctx, newPlayer)
	if err != nil {
		p.log.Errorf("failed to insert player: %v", err)
		return err
	}
	return nil
}

func (p *PlayerRepository) GetPlayersByOwner(ctx context.Context, ownerID string) ([]playerDomain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := p.mongo.Collection("players").Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		p.log.Error(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []playerDomain.Player
	if err := cursor.All(ctx, &result); err != nil {
		p.log.Error(err)
		return nil, err
	}
	return result, nil
}

func (p *PlayerRepository) GetPlayerByID(ctx context.Context, ownerID string, playerID string) (playerDomain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": playerID, "owner_id": ownerID}

	var result playerDomain.Player
	err := p.mongo.Collection("players").FindOne(ctx, filter).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return playerDomain.Player{}, errs.ErrPlayerNotFound
	} else if err != nil {
		p.log.Error(err)
		return playerDomain.Player{}, err
	}
	return result, nil
}

func (p *PlayerRepository) UpdatePlayer(ctx context.Context, updated playerDomain.Player) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": updated.ID, "owner_id": updated.OwnerID}
	update := bson.M{"$set": bson.M{
		"name":               updated.Name,
		"avatar_url":         updated.AvatarURL,
		"baseline_win_rate":  updated.BaselineWinRate,
		"baseline_avg_score": updated.BaselineAvgScore,
	}}

	res, err := p.mongo.Collection("players").UpdateOne(ctx, filter, update)
	if err != nil {
		p.log.Errorf("failed to update player %s: %v", updated.ID, err)
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrPlayerNotFound
	}
	return nil
}

func (p *PlayerRepository) DeletePlayer(ctx context.Context, ownerID string, playerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := p.mongo.Collection("players").DeleteOne(ctx, bson.M{"_id": playerID, "owner_id": ownerID})
	if err != nil {
		p.log.Errorf("failed to delete player %s: %v", playerID, err)
		return err
	}
	if res.DeletedCount == 0 {
		return errs.ErrPlayerNotFound
	}
	return nil
}
