package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/matka-admin/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	InsertOperator = `INSERT INTO OPERATORS (id, login, password)
						VALUES ($1, $2, $3)
						ON CONFLICT (login) DO NOTHING
						RETURNING login;`
	GetOperator = `SELECT id, login, password FROM OPERATORS WHERE login=$1;`
)

type OperatorDatabase struct {
	DB *Database
}

// Создание хранилища
func NewOperatorsStorage(db *Database) OperatorsStorage {
	return &OperatorDatabase{DB: db}
}

func (s *OperatorDatabase) GetOperator(ctx context.Context, login string) (*models.OperatorData, error) {
	var (
		operatorID string
		dbLogin    string
		password   string
	)
	err := s.DB.Pool.QueryRow(ctx, GetOperator, login).Scan(&operatorID, &dbLogin, &password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	return &models.OperatorData{
		OperatorID:   operatorID,
		Login:        dbLogin,
		PasswordHash: password,
	}, nil
}

func (s *OperatorDatabase) AddOperator(ctx context.Context, login string, password string) error {
	var prevLogin string
	operatorID := uuid.New().String()

	err := s.DB.Pool.QueryRow(ctx, InsertOperator, operatorID, login, password).Scan(&prevLogin)

	// Успешное добавление
	if err == nil {
		return nil
	}

	// При конфликте логина RETURNING не возвращает строк
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}

	// Проверяем именно нарушение уникальности (код 23505)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add operator: %w", err)
}
