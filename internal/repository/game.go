package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	gameDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/game"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
)

type GameRepository struct {
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewGameRepository(log *zap.SugaredLogger, mongo *mongo.Database) *GameRepository {
	return &GameRepository{log: log, mongo: mongo}
}

func (g *GameRepository) InsertGame(ctx context.Context, newGame gameDomain.Game) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := g.mongo.Collection("games").InsertOne(ctx, newGame)
	if err != nil {
		g.log.Errorf("failed to insert game: %v", err)
		return err
	}
	return nil
}

func (g *GameRepository) GetGamesByOwner(ctx context.Context, ownerID string) ([]gameDomain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := g.mongo.Collection("games").Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		g.log.Error(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []gameDomain.Game
	if err := cursor.All(ctx, &result); err != nil {
		g.log.Error(err)
		return nil, err
	}
	return result, nil
}

func (g *GameRepository) GetGameByID(ctx context.Context, ownerID string, gameID string) (gameDomain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": gameID, "owner_id": ownerID}

	var result gameDomain.Game
	err := g.mongo.Collection("games").FindOne(ctx, filter).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return gameDomain.Game{}, errs.ErrGameNotFound
	} else if err != nil {
		g.log.Error(err)
		return gameDomain.Game{}, err
	}
	return result, nil
}

func (g *GameRepository) UpdateGame(ctx context.Context, updated gameDomain.Game) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": updated.ID, "owner_id": updated.OwnerID}
	update := bson.M{"$set": bson.M{
		"name":           updated.Name,
		"points_per_win": updated.PointsPerWin,
		"min_players":    updated.MinPlayers,
		"max_players":    updated.MaxPlayers,
		"description":    updated.Description,
		"icon":           updated.Icon,
	}}

	res, err := g.mongo.Collection("games").UpdateOne(ctx, filter, update)
	if err != nil {
		g.log.Errorf("failed to update game %s: %v", updated.ID, err)
		return err
	}
	if res.MatchedCount == 0 {
		return errs.ErrGameNotFound
	}
	return nil
}

func (g *GameRepository) DeleteGame(ctx context.Context, ownerID string, gameID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := g.mongo.Collection("games").DeleteOne(ctx, bson.M{"_id": gameID, "owner_id": ownerID})
	if err != nil {
		g.log.Errorf("failed to delete game %s: %v", gameID, err)
		return err
	}
	if res.DeletedCount == 0 {
		return errs.ErrGameNotFound
	}
	return nil
}
