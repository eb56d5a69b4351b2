package zoo

import "time"

// Kind identifica el tipo de entidad dentro del modelo.
type Kind string

const (
	KindZookeeper Kind = "zookeeper"
	KindEnclosure Kind = "enclosure"
	KindAnimal    Kind = "animal"
)

// Zookeeper representa a un cuidador registrado en el sistema.
type Zookeeper struct {
	ID       int64
	Name     string // único entre cuidadores
	Birthday time.Time

	// Animals se carga solo vía consulta explícita (Service.ZookeeperDetail).
	// nil = no cargado.
	Animals []Animal
}

// Enclosure representa un recinto del zoológico.
type Enclosure struct {
	ID             int64
	Environment    string
	OpenToVisitors bool

	// nil = no cargado.
	Animals []Animal
}

// Animal representa un animal, con referencias opcionales a su cuidador
// y a su recinto. Las FKs viven acá: ambas relaciones 1—N cuelgan de animals.
type Animal struct {
	ID      int64
	Name    string // único entre animales
	Species string

	ZookeeperID *int64
	EnclosureID *int64

	// Referencias cargadas vía consulta explícita (Service.AnimalDetail).
	// nil = no cargado.
	Zookeeper *Zookeeper
	Enclosure *Enclosure
}
