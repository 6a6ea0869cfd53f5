package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/ahmedroou/scoreverse0-sub000/internal/adapters"
	userDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/user"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
)

type MongoUserStorage struct {
	adapter *adapters.AdapterMongo
	log     *zap.SugaredLogger
}

func NewMongoUserStorage(adapter *adapters.AdapterMongo, log *zap.SugaredLogger) *MongoUserStorage {
	return &MongoUserStorage{adapter: adapter, log: log}
}

func (m *MongoUserStorage) CheckExists(username string) bool {
	_, ok := m.GetUser(username)
	return ok
}

func (m *MongoUserStorage) GetUser(username string) (userDomain.UserAccount, bool) {
	collection := m.adapter.Database.Collection("users")
	filter := bson.M{"username": username}

	var result userDomain.UserAccount
	err := collection.FindOne(context.TODO(), filter).Decode(&result)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			m.log.Error(err)
		}
		return userDomain.UserAccount{}, false
	}
	return result, true
}

func (m *MongoUserStorage) GetUserByID(id string) (userDomain.UserAccount, bool) {
	collection := m.adapter.Database.Collection("users")
	filter := bson.M{"_id": id}

	var result userDomain.UserAccount
	err := collection.FindOne(context.TODO(), filter).Decode(&result)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			m.log.Error(err)
		}
		return userDomain.UserAccount{}, false
	}
	return result, true
}

func (m *MongoUserStorage) CreateUser(account userDomain.UserAccount) (userDomain.UserAccount, error) {
	if m.CheckExists(account.Username) {
		return userDomain.UserAccount{}, errs.ErrUserExists
	}

	account.ID = uuid.New().String()
	account.ShareID = uuid.New().String()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt

	collection := m.adapter.Database.Collection("users")
	if _, err := collection.InsertOne(context.TODO(), account); err != nil {
		m.log.Error(err)
		return userDomain.UserAccount{}, errs.ErrInternal
	}
	return account, nil
}
