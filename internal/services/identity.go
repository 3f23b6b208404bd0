package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/matka-admin/internal/config"
	"github.com/denmor86/matka-admin/internal/logger"
	"github.com/denmor86/matka-admin/internal/models"
	"github.com/denmor86/matka-admin/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type IdentityService interface {
	RegisterOperator(ctx context.Context, operator models.OperatorRequest) error
	AuthenticateOperator(ctx context.Context, operator models.OperatorRequest) (bool, error)
	GenerateJWT(username string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Storage storage.OperatorsStorage
}

var (
	ErrOperatorAlreadyExists = errors.New("operator already exists")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(cfg config.Config, storage storage.OperatorsStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Storage: storage}
}

// Регистрация нового оператора.
func (i *Identity) RegisterOperator(ctx context.Context, operator models.OperatorRequest) error {
	logger.Info("Register operator:", operator.Login)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(operator.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return err
	}

	err = i.Storage.AddOperator(ctx, operator.Login, string(hashedPassword))
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("Operator already exist", operator.Login)
			return ErrOperatorAlreadyExists
		}
		logger.Error("Error registering operator", operator.Login, err)
		return err
	}
	return nil
}

// Аутентификация оператора
func (i *Identity) AuthenticateOperator(ctx context.Context, operator models.OperatorRequest) (bool, error) {
	logger.Info("Authenticate operator", operator.Login)

	data, err := i.Storage.GetOperator(ctx, operator.Login)
	if err != nil {
		if errors.Is(err, storage.ErrOperatorNotFound) {
			logger.Warn("Operator not found", operator.Login)
			return false, nil
		}
		logger.Error("Error getting operator", err)
		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(data.PasswordHash), []byte(operator.Password))
	if err != nil {
		logger.Warn("Invalid password", operator.Login)
		return false, nil
	}

	logger.Info("Operator authenticated", operator.Login)
	return true, nil
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(username string) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"username": username,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
