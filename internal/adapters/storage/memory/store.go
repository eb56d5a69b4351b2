package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"zoo-management/internal/domain/zoo"
)

// DeletePolicy define qué pasa con los animales cuando se borra su cuidador
// o recinto. Espejo de schema.Options.AnimalOnDelete para el store en memoria.
type DeletePolicy int

const (
	// Restrict rechaza el delete mientras haya animales referenciando.
	Restrict DeletePolicy = iota
	// SetNull limpia la FK de los animales referenciando (ambas son nullable).
	SetNull
)

type Options struct {
	OnDelete DeletePolicy
}

// Store guarda las tres tablas en memoria y hace de capa de persistencia
// para dev/tests: unicidad de nombres, integridad referencial e ids seriales,
// señalizados con los mismos sentinels que el adapter postgres.
type Store struct {
	mu     sync.RWMutex
	policy DeletePolicy

	zookeeperSeq int64
	enclosureSeq int64
	animalSeq    int64

	zookeepers map[int64]zoo.Zookeeper
	enclosures map[int64]zoo.Enclosure
	animals    map[int64]zoo.Animal
}

func NewStore(opts Options) *Store {
	return &Store{
		policy:     opts.OnDelete,
		zookeepers: make(map[int64]zoo.Zookeeper),
		enclosures: make(map[int64]zoo.Enclosure),
		animals:    make(map[int64]zoo.Animal),
	}
}

// Vistas por entidad sobre el mismo store: los chequeos de FK y las políticas
// de borrado necesitan ver las tablas vecinas.

func (s *Store) Zookeepers() zoo.ZookeeperRepository { return zookeeperRepo{s} }
func (s *Store) Enclosures() zoo.EnclosureRepository { return enclosureRepo{s} }
func (s *Store) Animals() zoo.AnimalRepository       { return animalRepo{s} }

// Repositories arma el set completo para zoo.NewService.
func (s *Store) Repositories() zoo.Repositories {
	return zoo.Repositories{
		Zookeepers: s.Zookeepers(),
		Enclosures: s.Enclosures(),
		Animals:    s.Animals(),
	}
}

// -------------------------
// zookeepers
// -------------------------

type zookeeperRepo struct {
	s *Store
}

func (r zookeeperRepo) Create(ctx context.Context, z zoo.Zookeeper) (zoo.Zookeeper, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.zookeepers {
		if other.Name == z.Name {
			return zoo.Zookeeper{}, fmt.Errorf("%w: zookeeper %q", zoo.ErrDuplicateName, z.Name)
		}
	}

	s.zookeeperSeq++
	z.ID = s.zookeeperSeq
	z.Animals = nil // las relaciones no se persisten, se cargan por consulta
	s.zookeepers[z.ID] = z
	return z, nil
}

func (r zookeeperRepo) GetByID(ctx context.Context, id int64) (zoo.Zookeeper, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	z, ok := s.zookeepers[id]
	if !ok {
		return zoo.Zookeeper{}, zoo.ErrNotFound
	}
	return z, nil
}

func (r zookeeperRepo) Delete(ctx context.Context, id int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.zookeepers[id]; !ok {
		return zoo.ErrNotFound
	}

	for aid, a := range s.animals {
		if a.ZookeeperID == nil || *a.ZookeeperID != id {
			continue
		}
		if s.policy == Restrict {
			return fmt.Errorf("%w: animal %q still references zookeeper %d", zoo.ErrForeignKey, a.Name, id)
		}
		a.ZookeeperID = nil
		s.animals[aid] = a
	}

	delete(s.zookeepers, id)
	return nil
}

// -------------------------
// enclosures
// -------------------------

type enclosureRepo struct {
	s *Store
}

func (r enclosureRepo) Create(ctx context.Context, e zoo.Enclosure) (zoo.Enclosure, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enclosureSeq++
	e.ID = s.enclosureSeq
	e.Animals = nil
	s.enclosures[e.ID] = e
	return e, nil
}

func (r enclosureRepo) GetByID(ctx context.Context, id int64) (zoo.Enclosure, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.enclosures[id]
	if !ok {
		return zoo.Enclosure{}, zoo.ErrNotFound
	}
	return e, nil
}

func (r enclosureRepo) Delete(ctx context.Context, id int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.enclosures[id]; !ok {
		return zoo.ErrNotFound
	}

	for aid, a := range s.animals {
		if a.EnclosureID == nil || *a.EnclosureID != id {
			continue
		}
		if s.policy == Restrict {
			return fmt.Errorf("%w: animal %q still references enclosure %d", zoo.ErrForeignKey, a.Name, id)
		}
		a.EnclosureID = nil
		s.animals[aid] = a
	}

	delete(s.enclosures, id)
	return nil
}

// -------------------------
// animals
// -------------------------

type animalRepo struct {
	s *Store
}

func (r animalRepo) Create(ctx context.Context, a zoo.Animal) (zoo.Animal, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.animals {
		if other.Name == a.Name {
			return zoo.Animal{}, fmt.Errorf("%w: animal %q", zoo.ErrDuplicateName, a.Name)
		}
	}
	if a.ZookeeperID != nil {
		if _, ok := s.zookeepers[*a.ZookeeperID]; !ok {
			return zoo.Animal{}, fmt.Errorf("%w: zookeeper %d", zoo.ErrForeignKey, *a.ZookeeperID)
		}
	}
	if a.EnclosureID != nil {
		if _, ok := s.enclosures[*a.EnclosureID]; !ok {
			return zoo.Animal{}, fmt.Errorf("%w: enclosure %d", zoo.ErrForeignKey, *a.EnclosureID)
		}
	}

	s.animalSeq++
	a.ID = s.animalSeq
	a.Zookeeper = nil
	a.Enclosure = nil
	s.animals[a.ID] = a
	return a, nil
}

func (r animalRepo) GetByID(ctx context.Context, id int64) (zoo.Animal, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.animals[id]
	if !ok {
		return zoo.Animal{}, zoo.ErrNotFound
	}
	return a, nil
}

func (r animalRepo) ListByZookeeper(ctx context.Context, zookeeperID int64) ([]zoo.Animal, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]zoo.Animal, 0)
	for _, a := range s.animals {
		if a.ZookeeperID != nil && *a.ZookeeperID == zookeeperID {
			out = append(out, a)
		}
	}
	sortByID(out)
	return out, nil
}

func (r animalRepo) ListByEnclosure(ctx context.Context, enclosureID int64) ([]zoo.Animal, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]zoo.Animal, 0)
	for _, a := range s.animals {
		if a.EnclosureID != nil && *a.EnclosureID == enclosureID {
			out = append(out, a)
		}
	}
	sortByID(out)
	return out, nil
}

func (r animalRepo) Delete(ctx context.Context, id int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.animals[id]; !ok {
		return zoo.ErrNotFound
	}
	delete(s.animals, id)
	return nil
}

// Orden estable por id asc (consistencia con el ORDER BY del adapter postgres).
func sortByID(animals []zoo.Animal) {
	sort.Slice(animals, func(i, j int) bool {
		return animals[i].ID < animals[j].ID
	})
}
