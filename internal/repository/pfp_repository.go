package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pfp_gallery/internal/domain/models"
	"pfp_gallery/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type PfpRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPfpRepository(db *pgxpool.Pool) *PfpRepo {
	return &PfpRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreatePfp сохраняет новую запись каталога и возвращает её с присвоенными id и created_at
func (r *PfpRepo) CreatePfp(ctx context.Context, pfp models.Pfp) (*models.Pfp, error) {
	const op = "repository.pfp_repository.CreatePfp"

	pfp.ID = uuid.New()
	pfp.CreatedAt = time.Now().UTC()

	query, args, err := r.sb.Insert("pfps").
		Columns(
			"id",
			"title",
			"author",
			"url",
			"category",
			"tags",
			"created_at",
		).
		Values(
			pfp.ID,
			pfp.Title,
			pfp.Author,
			pfp.URL,
			pfp.Category,
			pfp.Tags,
			pfp.CreatedAt,
		).
		Suffix("RETURNING id, title, author, url, category, tags, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	row := r.db.QueryRow(ctx, query, args...)

	var created models.Pfp
	err = row.Scan(
		&created.ID,
		&created.Title,
		&created.Author,
		&created.URL,
		&created.Category,
		&created.Tags,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create pfp: %w", op, err)
	}

	return &created, nil
}

// ListPfps возвращает все записи каталога, новые первыми
func (r *PfpRepo) ListPfps(ctx context.Context) ([]models.Pfp, error) {
	const op = "repository.pfp_repository.ListPfps"

	query, args, err := r.sb.
		Select(
			"id",
			"title",
			"author",
			"url",
			"category",
			"tags",
			"created_at",
		).
		From("pfps").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}
	defer rows.Close()

	pfps := make([]models.Pfp, 0)

	for rows.Next() {
		var p models.Pfp
		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Author,
			&p.URL,
			&p.Category,
			&p.Tags,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		pfps = append(pfps, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return pfps, nil
}

// GetPfp возвращает запись каталога по ID
func (r *PfpRepo) GetPfp(ctx context.Context, id uuid.UUID) (*models.Pfp, error) {
	const op = "repository.pfp_repository.GetPfp"

	query, args, err := r.sb.
		Select(
			"id",
			"title",
			"author",
			"url",
			"category",
			"tags",
			"created_at",
		).
		From("pfps").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	row := r.db.QueryRow(ctx, query, args...)

	var p models.Pfp
	err = row.Scan(
		&p.ID,
		&p.Title,
		&p.Author,
		&p.URL,
		&p.Category,
		&p.Tags,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrPfpNotFound)
		}
		return nil, fmt.Errorf("%s: failed to get pfp: %w", op, err)
	}

	return &p, nil
}

// UpdatePfpFields обновляет только перечисленные поля записи и возвращает её новое состояние
func (r *PfpRepo) UpdatePfpFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Pfp, error) {
	const op = "repository.pfp_repository.UpdatePfpFields"

	allowedFields := map[string]bool{
		"title":    true,
		"author":   true,
		"url":      true,
		"category": true,
		"tags":     true,
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%s: no fields to update", op)
	}

	updateBuilder := r.sb.Update("pfps")

	for field, value := range updates {
		if !allowedFields[field] {
			return nil, fmt.Errorf("%s: field '%s' is not allowed for update", op, field)
		}

		updateBuilder = updateBuilder.Set(field, value)
	}

	updateBuilder = updateBuilder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, author, url, category, tags, created_at")

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	row := r.db.QueryRow(ctx, query, args...)

	var updated models.Pfp
	err = row.Scan(
		&updated.ID,
		&updated.Title,
		&updated.Author,
		&updated.URL,
		&updated.Category,
		&updated.Tags,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrPfpNotFound)
		}
		return nil, fmt.Errorf("%s: failed to update pfp: %w", op, err)
	}

	return &updated, nil
}

// DeletePfp удаляет запись каталога; отсутствие записи ошибкой не считается
func (r *PfpRepo) DeletePfp(ctx context.Context, id uuid.UUID) error {
	const op = "repository.pfp_repository.DeletePfp"

	query, args, err := r.sb.
		Delete("pfps").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: failed to delete pfp: %w", op, err)
	}

	return nil
}
