package auth

import (
	"crypto/sha256"
	"encoding/hex"

	userDomain "github.com/ahmedroou/scoreverse0-sub000/internal/domain/user"
	errs "github.com/ahmedroou/scoreverse0-sub000/internal/errors"
	"github.com/ahmedroou/scoreverse0-sub000/internal/random"
)

type UserStorage interface {
	CheckExists(username string) bool
	GetUser(username string) (userDomain.UserAccount, bool)
	GetUserByID(id string) (userDomain.UserAccount, bool)
	CreateUser(account userDomain.UserAccount) (userDomain.UserAccount, error)
}

type SessionStorage interface {
	GetUserIdBySession(sessionID string) (userID string, ok bool)
	StoreSession(sessionID string, userID string)
	DeleteSession(sessionID string) (ok bool)
}

type AuthUsecaseHandler struct {
	userStorage    UserStorage
	sessionStorage SessionStorage
}

func NewUserUsecaseHandler(u UserStorage, s SessionStorage) *AuthUsecaseHandler {
	return &AuthUsecaseHandler{
		userStorage:    u,
		sessionStorage: s,
	}
}

func (a *AuthUsecaseHandler) CheckAuthorized(sessionID string) (ok bool, account userDomain.UserAccount) {
	userID, found := a.sessionStorage.GetUserIdBySession(sessionID)
	if !found {
		return false, userDomain.UserAccount{}
	}
	account, ok = a.userStorage.GetUserByID(userID)
	if !ok {
		return false, userDomain.UserAccount{}
	}
	return ok, account
}

func (a *AuthUsecaseHandler) RegisterUser(username, email, password string) (sessionID string, err error) {
	if a.userStorage.CheckExists(username) {
		return "", errs.ErrUserExists
	}

	salt := random.RandString(16)
	account := userDomain.UserAccount{
		Username:     username,
		Email:        email,
		PasswordHash: hashPassword(password, salt),
		PasswordSalt: salt,
	}

	created, err := a.userStorage.CreateUser(account)
	if err != nil {
		return "", err
	}

	sessionID = random.RandString(64)
	a.sessionStorage.StoreSession(sessionID, created.ID)
	return sessionID, nil
}

func (a *AuthUsecaseHandler) LoginUser(providedUsername string, providedPassword string) (sessionID string, err error) {
	userFromDb, found := a.userStorage.GetUser(providedUsername)
	if !found {
		return "", errs.ErrUserNotFound
	}
	if hashPassword(providedPassword, userFromDb.PasswordSalt) != userFromDb.PasswordHash {
		return "", errs.ErrWrongPassword
	}
	sessionID = random.RandString(64)
	a.sessionStorage.StoreSession(sessionID, userFromDb.ID)
	return sessionID, nil
}

// returns nil or ErrSessionNotFound
func (a *AuthUsecaseHandler) LogoutUser(sessionID string) (err error) {
	_, ok := a.sessionStorage.GetUserIdBySession(sessionID)
	if !ok {
		return errs.ErrSessionNotFound
	}
	ok = a.sessionStorage.DeleteSession(sessionID)
	if !ok {
		return errs.ErrSessionNotFound
	}
	return nil
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}
