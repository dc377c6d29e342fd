package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/sidharthsanthos/PKRA/internal/apperrors"
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	"github.com/sidharthsanthos/PKRA/internal/models"
	"github.com/sidharthsanthos/PKRA/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHouseRepository struct {
	BaseRepository
}

// newPgxHouseRepository creates a new repository for the house directory.
func newPgxHouseRepository(pool *pgxpool.Pool) portsrepo.HouseRepositoryFacade {
	return &PgxHouseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.HouseRepositoryFacade = (*PgxHouseRepository)(nil)

// SaveHouse inserts a new house.
func (r *PgxHouseRepository) SaveHouse(ctx context.Context, house domain.House) error {
	modelHouse := mapping.ToModelHouse(house)

	query := `
		INSERT INTO houses (house_number, owner_name, division, phone, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelHouse.HouseNumber,
		modelHouse.OwnerName,
		modelHouse.Division,
		modelHouse.Phone,
		modelHouse.CreatedAt,
		modelHouse.CreatedBy,
		modelHouse.LastUpdatedAt,
		modelHouse.LastUpdatedBy,
	)

	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.NewAppError(409, "house "+modelHouse.HouseNumber+" already exists", apperrors.ErrDuplicate)
		}
		return newStorageError("failed to save house "+modelHouse.HouseNumber, err)
	}
	return nil
}

// FindHouseByNumber retrieves a house by its number.
func (r *PgxHouseRepository) FindHouseByNumber(ctx context.Context, houseNumber string) (*domain.House, error) {
	query := `
		SELECT house_number, owner_name, division, phone, created_at, created_by, last_updated_at, last_updated_by
		FROM houses
		WHERE house_number = $1;
	`
	var modelHouse models.House
	err := r.Pool.QueryRow(ctx, query, houseNumber).Scan(
		&modelHouse.HouseNumber,
		&modelHouse.OwnerName,
		&modelHouse.Division,
		&modelHouse.Phone,
		&modelHouse.CreatedAt,
		&modelHouse.CreatedBy,
		&modelHouse.LastUpdatedAt,
		&modelHouse.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, newStorageError("failed to find house "+houseNumber, err)
	}

	domainHouse := mapping.ToDomainHouse(modelHouse)
	return &domainHouse, nil
}

// ListHouses retrieves houses matching the filter, ordered by house number.
func (r *PgxHouseRepository) ListHouses(ctx context.Context, filter portsrepo.HouseListFilter) ([]domain.House, error) {
	query := `
		SELECT house_number, owner_name, division, phone, created_at, created_by, last_updated_at, last_updated_by
		FROM houses
	`
	args := []interface{}{}
	whereClause := ""

	if filter.Division != nil {
		args = append(args, string(*filter.Division))
		whereClause = "WHERE division = $" + strconv.Itoa(len(args))
	}
	if filter.OwnerName != "" {
		args = append(args, "%"+filter.OwnerName+"%")
		if whereClause == "" {
			whereClause = "WHERE owner_name ILIKE $" + strconv.Itoa(len(args))
		} else {
			whereClause += " AND owner_name ILIKE $" + strconv.Itoa(len(args))
		}
	}

	rows, err := r.Pool.Query(ctx, query+whereClause+" ORDER BY house_number;", args...)
	if err != nil {
		return nil, newStorageError("failed to query houses", err)
	}
	defer rows.Close()

	modelHouses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.House, error) {
		var h models.House
		err := row.Scan(
			&h.HouseNumber,
			&h.OwnerName,
			&h.Division,
			&h.Phone,
			&h.CreatedAt,
			&h.CreatedBy,
			&h.LastUpdatedAt,
			&h.LastUpdatedBy,
		)
		return h, err
	})
	if err != nil {
		return nil, newStorageError("failed to scan house rows", err)
	}

	return mapping.ToDomainHouseSlice(modelHouses), nil
}

// CountHouses returns the number of onboarded houses.
func (r *PgxHouseRepository) CountHouses(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM houses;`).Scan(&count); err != nil {
		return 0, newStorageError("failed to count houses", err)
	}
	return count, nil
}

// UpdateHouse persists owner/division/phone corrections.
func (r *PgxHouseRepository) UpdateHouse(ctx context.Context, house domain.House) error {
	modelHouse := mapping.ToModelHouse(house)

	query := `
		UPDATE houses
		SET owner_name = $2,
		    division = $3,
		    phone = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE house_number = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelHouse.HouseNumber,
		modelHouse.OwnerName,
		modelHouse.Division,
		modelHouse.Phone,
		modelHouse.LastUpdatedAt,
		modelHouse.LastUpdatedBy,
	)

	if err != nil {
		return newStorageError("failed to update house "+modelHouse.HouseNumber, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("house " + modelHouse.HouseNumber + " not found for update")
	}

	return nil
}
