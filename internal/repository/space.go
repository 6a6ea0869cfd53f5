package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	spaceDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/space"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
)

type SpaceRepository struct {
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewSpaceRepository(log *zap.SugaredLogger, mongo *mongo.Database) *SpaceRepository {
	return &SpaceRepository{log: log, mongo: mongo}
}

func (s *SpaceRepository) InsertSpace(ctx context.Context, newSpace spaceDomain.Space) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.mongo.Collection("spaces").InsertOne(ctx, newSpace)
	if err != nil {
		s.log.Errorf("failed to insert space: %v", err)
		return err
	}
	return nil
}

func (s *SpaceRepository) GetSpacesByOwner(ctx context.Context, ownerID string) ([]spaceDomain.Space, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := s.mongo.Collection("spaces").Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		s.log.Error(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []spaceDomain.Space
	if err := cursor.All(ctx, &result); err != nil {
		s.log.Error(err)
		return nil, err
	}
	return result, nil
}

func (s *SpaceRepository) GetSpaceByID(ctx context.Context, ownerID string, spaceID string) (spaceDomain.Space, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": spaceID, "owner_id": ownerID}

	var result spaceDomain.Space
	err := s.mongo.Collection("spaces").FindOne(ctx, filter).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return spaceDomain.Space{}, errs.ErrSpaceNotFound
	} else if err != nil {
		s.log.Error(err)
		return spaceDomain.Space{}, err
	}
	return result, nil
}

func (s *SpaceRepository) DeleteSpace(ctx context.Context, ownerID string, spaceID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := s.mongo.Collection("spaces").DeleteOne(ctx, bson.M{"_id": spaceID, "owner_id": ownerID})
	if err != nil {
		s.log.Errorf("failed to delete space %s: %v", spaceID, err)
		return err
	}
	if res.DeletedCount == 0 {
		return errs.ErrSpaceNotFound
	}
	return nil
}
