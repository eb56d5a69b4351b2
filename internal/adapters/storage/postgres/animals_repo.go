package postgres

import (
	"context"
	"database/sql"

	"zoo-management/internal/domain/zoo"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a zoo.Animal) (zoo.Animal, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO animals (name, species, zookeeper_id, enclosure_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		a.Name,
		a.Species,
		toNullID(a.ZookeeperID),
		toNullID(a.EnclosureID),
	).Scan(&a.ID)
	if err != nil {
		return zoo.Animal{}, mapError(err)
	}
	return a, nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id int64) (zoo.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, species, zookeeper_id, enclosure_id
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		return zoo.Animal{}, mapError(err)
	}
	return a, nil
}

func (r *AnimalsRepo) ListByZookeeper(ctx context.Context, zookeeperID int64) ([]zoo.Animal, error) {
	return r.list(ctx, `
		SELECT id, name, species, zookeeper_id, enclosure_id
		FROM animals
		WHERE zookeeper_id = $1
		ORDER BY id ASC
	`, zookeeperID)
}

func (r *AnimalsRepo) ListByEnclosure(ctx context.Context, enclosureID int64) ([]zoo.Animal, error) {
	return r.list(ctx, `
		SELECT id, name, species, zookeeper_id, enclosure_id
		FROM animals
		WHERE enclosure_id = $1
		ORDER BY id ASC
	`, enclosureID)
}

func (r *AnimalsRepo) list(ctx context.Context, query string, arg any) ([]zoo.Animal, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]zoo.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, mapError(err)
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

func (r *AnimalsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return zoo.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row scanner) (zoo.Animal, error) {
	var a zoo.Animal
	var zk, en sql.NullInt64
	if err := row.Scan(&a.ID, &a.Name, &a.Species, &zk, &en); err != nil {
		return zoo.Animal{}, err
	}
	a.ZookeeperID = fromNullID(zk)
	a.EnclosureID = fromNullID(en)
	return a, nil
}

func toNullID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func fromNullID(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
