package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"teide-booking/internal/data/entity"
	"teide-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ServiceOverrideUpsert carries the columns of one admin edit. Nil fields are
// not part of the edit and keep whatever is stored.
type ServiceOverrideUpsert struct {
	Slug   string
	Price  *float64
	Images []string
	Data   *entity.ServiceOverrideData
}

type ServiceOverrideRepository interface {
	Find(ctx context.Context, slug string) (*entity.ServiceOverride, error)
	FindAll(ctx context.Context) (map[string]*entity.ServiceOverride, error)
	// Upsert runs a single INSERT .. ON CONFLICT statement.
	Upsert(ctx context.Context, in ServiceOverrideUpsert, now time.Time) error
}

type serviceOverrideRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceOverrideRepository(db database.PgxIface, log *zap.Logger) ServiceOverrideRepository {
	return &serviceOverrideRepository{
		db:  db,
		log: log.With(zap.String("repository", "service_override")),
	}
}

func scanOverride(row rowScanner) (*entity.ServiceOverride, error) {
	var (
		o          entity.ServiceOverride
		imagesJSON []byte
		dataJSON   []byte
	)
	if err := row.Scan(&o.Slug, &o.Price, &imagesJSON, &dataJSON, &o.UpdatedAt); err != nil {
		return nil, err
	}

	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &o.Images); err != nil {
			return nil, fmt.Errorf("decode images_json for %s: %w", o.Slug, err)
		}
	}
	if len(dataJSON) > 0 {
		var data entity.ServiceOverrideData
		if err := json.Unmarshal(dataJSON, &data); err != nil {
			return nil, fmt.Errorf("decode data_json for %s: %w", o.Slug, err)
		}
		o.Data = &data
	}

	return &o, nil
}

func (r *serviceOverrideRepository) Find(ctx context.Context, slug string) (*entity.ServiceOverride, error) {
	query := `
		SELECT slug, price::float8, images_json, data_json, updated_at
		FROM service_overrides
		WHERE slug = $1
	`

	override, err := scanOverride(r.db.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service override", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("find service override %s: %w", slug, err)
	}

	return override, nil
}

func (r *serviceOverrideRepository) FindAll(ctx context.Context) (map[string]*entity.ServiceOverride, error) {
	query := `
		SELECT slug, price::float8, images_json, data_json, updated_at
		FROM service_overrides
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list service overrides", zap.Error(err))
		return nil, fmt.Errorf("list service overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[string]*entity.ServiceOverride)
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			r.log.Error("Failed to scan service override", zap.Error(err))
			return nil, fmt.Errorf("scan service override: %w", err)
		}
		overrides[override.Slug] = override
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service overrides: %w", err)
	}

	return overrides, nil
}

func (r *serviceOverrideRepository) Upsert(ctx context.Context, in ServiceOverrideUpsert, now time.Time) error {
	var imagesJSON, dataJSON []byte
	var err error

	if in.Images != nil {
		if imagesJSON, err = json.Marshal(in.Images); err != nil {
			return fmt.Errorf("encode images for %s: %w", in.Slug, err)
		}
	}
	if in.Data != nil {
		if dataJSON, err = json.Marshal(in.Data); err != nil {
			return fmt.Errorf("encode data for %s: %w", in.Slug, err)
		}
	}

	query := `
		INSERT INTO service_overrides (slug, price, images_json, data_json, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO UPDATE SET
			price       = COALESCE(EXCLUDED.price, service_overrides.price),
			images_json = COALESCE(EXCLUDED.images_json, service_overrides.images_json),
			data_json   = COALESCE(EXCLUDED.data_json, service_overrides.data_json),
			updated_at  = EXCLUDED.updated_at
	`

	_, err = r.db.Exec(ctx, query, in.Slug, in.Price, imagesJSON, dataJSON, now)
	if err != nil {
		r.log.Error("Failed to upsert service override", zap.Error(err), zap.String("slug", in.Slug))
		return fmt.Errorf("upsert service override %s: %w", in.Slug, err)
	}

	return nil
}
