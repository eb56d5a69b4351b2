package zoo

import "time"

// ExclusionSet declara, por tipo de entidad, las rutas de relación a omitir
// al serializar. Las rutas son relativas a la entidad que las declara:
// "animals" omite la relación completa, "animals.zookeeper" omite el campo
// zookeeper dentro de cada animal anidado. Las reglas nunca tocan los campos
// propios de la entidad raíz, solo lo anidado.
type ExclusionSet map[Kind][]string

// DefaultExclusions corta los ciclos de referencia mutua dejando un nivel de
// detalle anidado en cada dirección.
func DefaultExclusions() ExclusionSet {
	return ExclusionSet{
		KindZookeeper: {"animals.zookeeper"},
		KindEnclosure: {"animals.enclosure"},
		KindAnimal:    {"zookeeper.animals", "enclosure.animals"},
	}
}

// Serialize convierte la entidad en un mapping listo para encodear (JSON u
// otro formato lo decide el caller). Función pura: no toca storage ni estado.
//
// Campos escalares siempre presentes (FKs en null si no están seteadas).
// Relaciones: solo si fueron cargadas (no-nil) y no las excluye una regla.
// Cada entidad anidada aporta sus propias reglas además de las heredadas, y
// nunca se re-serializa una entidad que ya está en la cadena de ancestros,
// así un ExclusionSet incompleto degrada en omisión y no en recursión infinita.
func Serialize(entity any, excl ExclusionSet) map[string]any {
	return serialize(entity, excl, nil, nil)
}

type entityRef struct {
	kind Kind
	id   int64
}

func serialize(entity any, excl ExclusionSet, inherited []string, chain []entityRef) map[string]any {
	switch e := entity.(type) {
	case *Zookeeper:
		if e == nil {
			return nil
		}
		return serializeZookeeper(*e, excl, inherited, chain)
	case Zookeeper:
		return serializeZookeeper(e, excl, inherited, chain)
	case *Enclosure:
		if e == nil {
			return nil
		}
		return serializeEnclosure(*e, excl, inherited, chain)
	case Enclosure:
		return serializeEnclosure(e, excl, inherited, chain)
	case *Animal:
		if e == nil {
			return nil
		}
		return serializeAnimal(*e, excl, inherited, chain)
	case Animal:
		return serializeAnimal(e, excl, inherited, chain)
	default:
		return nil
	}
}

func serializeZookeeper(z Zookeeper, excl ExclusionSet, inherited []string, chain []entityRef) map[string]any {
	rules := merge(inherited, excl[KindZookeeper])

	out := map[string]any{
		"id":       z.ID,
		"name":     z.Name,
		"birthday": dateOrNil(z.Birthday),
	}

	if z.Animals != nil && !omitted(rules, "animals") {
		self := entityRef{KindZookeeper, z.ID}
		sub := descend(rules, "animals")

		items := make([]map[string]any, 0, len(z.Animals))
		for _, a := range z.Animals {
			if onChain(chain, entityRef{KindAnimal, a.ID}) {
				continue
			}
			items = append(items, serialize(a, excl, sub, append(chain, self)))
		}
		out["animals"] = items
	}

	return out
}

func serializeEnclosure(e Enclosure, excl ExclusionSet, inherited []string, chain []entityRef) map[string]any {
	rules := merge(inherited, excl[KindEnclosure])

	out := map[string]any{
		"id":               e.ID,
		"environment":      e.Environment,
		"open_to_visitors": e.OpenToVisitors,
	}

	if e.Animals != nil && !omitted(rules, "animals") {
		self := entityRef{KindEnclosure, e.ID}
		sub := descend(rules, "animals")

		items := make([]map[string]any, 0, len(e.Animals))
		for _, a := range e.Animals {
			if onChain(chain, entityRef{KindAnimal, a.ID}) {
				continue
			}
			items = append(items, serialize(a, excl, sub, append(chain, self)))
		}
		out["animals"] = items
	}

	return out
}

func serializeAnimal(a Animal, excl ExclusionSet, inherited []string, chain []entityRef) map[string]any {
	rules := merge(inherited, excl[KindAnimal])
	self := entityRef{KindAnimal, a.ID}

	out := map[string]any{
		"id":           a.ID,
		"name":         a.Name,
		"species":      a.Species,
		"zookeeper_id": idOrNil(a.ZookeeperID),
		"enclosure_id": idOrNil(a.EnclosureID),
	}

	if a.Zookeeper != nil && !omitted(rules, "zookeeper") {
		if ref := (entityRef{KindZookeeper, a.Zookeeper.ID}); !onChain(chain, ref) {
			out["zookeeper"] = serialize(*a.Zookeeper, excl, descend(rules, "zookeeper"), append(chain, self))
		}
	}
	if a.Enclosure != nil && !omitted(rules, "enclosure") {
		if ref := (entityRef{KindEnclosure, a.Enclosure.ID}); !onChain(chain, ref) {
			out["enclosure"] = serialize(*a.Enclosure, excl, descend(rules, "enclosure"), append(chain, self))
		}
	}

	return out
}

func merge(inherited, own []string) []string {
	if len(own) == 0 {
		return inherited
	}
	rules := make([]string, 0, len(inherited)+len(own))
	rules = append(rules, inherited...)
	rules = append(rules, own...)
	return rules
}

// omitted reporta si la relación está excluida en este nivel.
func omitted(rules []string, field string) bool {
	for _, r := range rules {
		if r == field {
			return true
		}
	}
	return false
}

// descend baja un nivel: de "animals.zookeeper" bajo "animals" queda
// "zookeeper", relativo a la entidad anidada.
func descend(rules []string, field string) []string {
	prefix := field + "."
	var sub []string
	for _, r := range rules {
		if len(r) > len(prefix) && r[:len(prefix)] == prefix {
			sub = append(sub, r[len(prefix):])
		}
	}
	return sub
}

func onChain(chain []entityRef, ref entityRef) bool {
	for _, c := range chain {
		if c == ref {
			return true
		}
	}
	return false
}

func idOrNil(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

// birthday es DATE: se serializa YYYY-MM-DD, null si no está seteada.
func dateOrNil(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format("2006-01-02")
}
