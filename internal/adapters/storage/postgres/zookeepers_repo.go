package postgres

import (
	"context"
	"database/sql"
	"time"

	"zoo-management/internal/domain/zoo"
)

type ZookeepersRepo struct {
	db *sql.DB
}

func NewZookeepersRepo(db *sql.DB) *ZookeepersRepo {
	return &ZookeepersRepo{db: db}
}

func (r *ZookeepersRepo) Create(ctx context.Context, z zoo.Zookeeper) (zoo.Zookeeper, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO zookeepers (name, birthday)
		VALUES ($1, $2)
		RETURNING id
	`,
		z.Name,
		toNullDate(z.Birthday),
	).Scan(&z.ID)
	if err != nil {
		return zoo.Zookeeper{}, mapError(err)
	}
	return z, nil
}

func (r *ZookeepersRepo) GetByID(ctx context.Context, id int64) (zoo.Zookeeper, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, birthday
		FROM zookeepers
		WHERE id = $1
	`, id)

	var z zoo.Zookeeper
	var bd sql.NullTime
	if err := row.Scan(&z.ID, &z.Name, &bd); err != nil {
		return zoo.Zookeeper{}, mapError(err)
	}
	if bd.Valid {
		z.Birthday = bd.Time
	}

	return z, nil
}

func (r *ZookeepersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM zookeepers WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return zoo.ErrNotFound
	}
	return nil
}

// birthday es DATE, lo pasamos como NullTime (zero time = null).
func toNullDate(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}
