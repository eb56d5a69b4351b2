package zoo

import "context"

// Los Create devuelven la entidad con el ID asignado por el storage (serial).

type ZookeeperRepository interface {
	Create(ctx context.Context, z Zookeeper) (Zookeeper, error)
	GetByID(ctx context.Context, id int64) (Zookeeper, error)
	Delete(ctx context.Context, id int64) error
}

type EnclosureRepository interface {
	Create(ctx context.Context, e Enclosure) (Enclosure, error)
	GetByID(ctx context.Context, id int64) (Enclosure, error)
	Delete(ctx context.Context, id int64) error
}

type AnimalRepository interface {
	Create(ctx context.Context, a Animal) (Animal, error)
	GetByID(ctx context.Context, id int64) (Animal, error)
	ListByZookeeper(ctx context.Context, zookeeperID int64) ([]Animal, error)
	ListByEnclosure(ctx context.Context, enclosureID int64) ([]Animal, error)
	Delete(ctx context.Context, id int64) error
}
