package zoo

import (
	"context"
	"strings"
	"time"

	"zoo-management/internal/platform/logger"
)

// Repositories agrupa los tres repos que necesita el servicio.
type Repositories struct {
	Zookeepers ZookeeperRepository
	Enclosures EnclosureRepository
	Animals    AnimalRepository
}

type Service struct {
	repos Repositories
	log   logger.Logger
}

func NewService(repos Repositories, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewFromEnv()
	}
	return &Service{
		repos: repos,
		log:   log,
	}
}

type CreateZookeeperInput struct {
	Name     string
	Birthday time.Time
}

type CreateEnclosureInput struct {
	Environment    string
	OpenToVisitors bool
}

type CreateAnimalInput struct {
	Name        string
	Species     string
	ZookeeperID *int64
	EnclosureID *int64
}

func (s *Service) CreateZookeeper(ctx context.Context, in CreateZookeeperInput) (Zookeeper, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Zookeeper{}, ErrInvalidInput
	}

	z, err := s.repos.Zookeepers.Create(ctx, Zookeeper{
		Name:     strings.TrimSpace(in.Name),
		Birthday: in.Birthday,
	})
	if err != nil {
		return Zookeeper{}, err
	}

	s.log.Info("zookeeper created", map[string]any{"id": z.ID, "name": z.Name})
	return z, nil
}

func (s *Service) CreateEnclosure(ctx context.Context, in CreateEnclosureInput) (Enclosure, error) {
	if strings.TrimSpace(in.Environment) == "" {
		return Enclosure{}, ErrInvalidInput
	}

	e, err := s.repos.Enclosures.Create(ctx, Enclosure{
		Environment:    strings.TrimSpace(in.Environment),
		OpenToVisitors: in.OpenToVisitors,
	})
	if err != nil {
		return Enclosure{}, err
	}

	s.log.Info("enclosure created", map[string]any{"id": e.ID, "environment": e.Environment})
	return e, nil
}

func (s *Service) CreateAnimal(ctx context.Context, in CreateAnimalInput) (Animal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Animal{}, ErrInvalidInput
	}

	// Si zookeeper_id / enclosure_id apuntan a filas inexistentes, el
	// storage responde ErrForeignKey; acá no se pre-valida.
	a, err := s.repos.Animals.Create(ctx, Animal{
		Name:        strings.TrimSpace(in.Name),
		Species:     strings.TrimSpace(in.Species),
		ZookeeperID: in.ZookeeperID,
		EnclosureID: in.EnclosureID,
	})
	if err != nil {
		return Animal{}, err
	}

	s.log.Info("animal created", map[string]any{"id": a.ID, "name": a.Name, "species": a.Species})
	return a, nil
}

func (s *Service) GetZookeeper(ctx context.Context, id int64) (Zookeeper, error) {
	return s.repos.Zookeepers.GetByID(ctx, id)
}

func (s *Service) GetEnclosure(ctx context.Context, id int64) (Enclosure, error) {
	return s.repos.Enclosures.GetByID(ctx, id)
}

func (s *Service) GetAnimal(ctx context.Context, id int64) (Animal, error) {
	return s.repos.Animals.GetByID(ctx, id)
}

// ZookeeperDetail carga el cuidador con sus animales vía consulta explícita.
// Animals queda no-nil aunque esté vacío, para distinguir "cargado sin
// animales" de "no cargado".
func (s *Service) ZookeeperDetail(ctx context.Context, id int64) (Zookeeper, error) {
	z, err := s.repos.Zookeepers.GetByID(ctx, id)
	if err != nil {
		return Zookeeper{}, err
	}

	animals, err := s.repos.Animals.ListByZookeeper(ctx, id)
	if err != nil {
		return Zookeeper{}, err
	}
	if animals == nil {
		animals = make([]Animal, 0)
	}
	z.Animals = animals

	return z, nil
}

// EnclosureDetail carga el recinto con sus animales.
func (s *Service) EnclosureDetail(ctx context.Context, id int64) (Enclosure, error) {
	e, err := s.repos.Enclosures.GetByID(ctx, id)
	if err != nil {
		return Enclosure{}, err
	}

	animals, err := s.repos.Animals.ListByEnclosure(ctx, id)
	if err != nil {
		return Enclosure{}, err
	}
	if animals == nil {
		animals = make([]Animal, 0)
	}
	e.Animals = animals

	return e, nil
}

// AnimalDetail carga el animal con su cuidador y recinto, si los tiene.
func (s *Service) AnimalDetail(ctx context.Context, id int64) (Animal, error) {
	a, err := s.repos.Animals.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if a.ZookeeperID != nil {
		z, err := s.repos.Zookeepers.GetByID(ctx, *a.ZookeeperID)
		if err != nil {
			return Animal{}, err
		}
		a.Zookeeper = &z
	}
	if a.EnclosureID != nil {
		e, err := s.repos.Enclosures.GetByID(ctx, *a.EnclosureID)
		if err != nil {
			return Animal{}, err
		}
		a.Enclosure = &e
	}

	return a, nil
}

func (s *Service) DeleteZookeeper(ctx context.Context, id int64) error {
	if err := s.repos.Zookeepers.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("zookeeper deleted", map[string]any{"id": id})
	return nil
}

func (s *Service) DeleteEnclosure(ctx context.Context, id int64) error {
	if err := s.repos.Enclosures.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("enclosure deleted", map[string]any{"id": id})
	return nil
}

func (s *Service) DeleteAnimal(ctx context.Context, id int64) error {
	if err := s.repos.Animals.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("animal deleted", map[string]any{"id": id})
	return nil
}
