package postgres

import (
	"context"
	"database/sql"

	"zoo-management/internal/domain/zoo"
)

type EnclosuresRepo struct {
	db *sql.DB
}

func NewEnclosuresRepo(db *sql.DB) *EnclosuresRepo {
	return &EnclosuresRepo{db: db}
}

func (r *EnclosuresRepo) Create(ctx context.Context, e zoo.Enclosure) (zoo.Enclosure, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO enclosures (environment, open_to_visitors)
		VALUES ($1, $2)
		RETURNING id
	`,
		e.Environment,
		e.OpenToVisitors,
	).Scan(&e.ID)
	if err != nil {
		return zoo.Enclosure{}, mapError(err)
	}
	return e, nil
}

func (r *EnclosuresRepo) GetByID(ctx context.Context, id int64) (zoo.Enclosure, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, environment, open_to_visitors
		FROM enclosures
		WHERE id = $1
	`, id)

	var e zoo.Enclosure
	if err := row.Scan(&e.ID, &e.Environment, &e.OpenToVisitors); err != nil {
		return zoo.Enclosure{}, mapError(err)
	}

	return e, nil
}

func (r *EnclosuresRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM enclosures WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return zoo.ErrNotFound
	}
	return nil
}
