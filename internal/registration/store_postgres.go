package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"udyam/internal/domain"
	dErrors "udyam/pkg/domain-errors"
)

// Postgres error codes translated into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PostgresStore persists registrations in PostgreSQL. Schema lives in
// migrations/0001_create_registrations.sql.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) CreateStep1(ctx context.Context, reg domain.RegistrationStep1) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO registration_step1 (id, aadhaar_number, entrepreneur_name, consent_given, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		reg.ID, reg.AadhaarNumber, reg.EntrepreneurName, reg.ConsentGiven, reg.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrAadhaarRegistered
		}
		return dErrors.Wrap(dErrors.CodeUnavailable, "failed to persist step 1 registration",
			fmt.Errorf("create step1: %w", err))
	}
	return nil
}

func (s *PostgresStore) FindStep1(ctx context.Context, id string) (domain.RegistrationStep1, error) {
	var reg domain.RegistrationStep1
	err := s.pool.QueryRow(ctx,
		`SELECT id, aadhaar_number, entrepreneur_name, consent_given, created_at
		 FROM registration_step1 WHERE id = $1`, id,
	).Scan(&reg.ID, &reg.AadhaarNumber, &reg.EntrepreneurName, &reg.ConsentGiven, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RegistrationStep1{}, ErrStep1NotFound
		}
		return domain.RegistrationStep1{}, dErrors.Wrap(dErrors.CodeUnavailable,
			"failed to load step 1 registration", fmt.Errorf("find step1: %w", err))
	}
	return reg, nil
}

func (s *PostgresStore) CreateStep2(ctx context.Context, reg domain.RegistrationStep2) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO registration_step2 (id, step1_id, pan_number, validated, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		reg.ID, reg.Step1ID, reg.PANNumber, reg.Validated, reg.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return ErrPANRegistered
			case pgForeignKeyViolation:
				return ErrStep1NotFound
			}
		}
		return dErrors.Wrap(dErrors.CodeUnavailable, "failed to persist step 2 registration",
			fmt.Errorf("create step2: %w", err))
	}
	return nil
}
