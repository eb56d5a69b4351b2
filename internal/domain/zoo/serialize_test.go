package zoo_test

import (
	"testing"
	"time"

	"zoo-management/internal/domain/zoo"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(v int64) *int64 { return &v }

func TestSerialize_ZookeeperScenario(t *testing.T) {
	// Alex cuida a Leo, que vive en la sabana.
	savanna := zoo.Enclosure{ID: 1, Environment: "Savanna", OpenToVisitors: true}
	leo := zoo.Animal{
		ID:          1,
		Name:        "Leo",
		Species:     "Lion",
		ZookeeperID: ptr(1),
		EnclosureID: ptr(1),
		Enclosure:   &savanna,
	}
	alex := zoo.Zookeeper{
		ID:       1,
		Name:     "Alex",
		Birthday: date(1990, time.January, 1),
		Animals:  []zoo.Animal{leo},
	}

	out := zoo.Serialize(alex, zoo.DefaultExclusions())

	if out["id"] != int64(1) || out["name"] != "Alex" {
		t.Fatalf("unexpected root fields: %v", out)
	}
	if out["birthday"] != "1990-01-01" {
		t.Fatalf("birthday = %v, want 1990-01-01", out["birthday"])
	}

	animals, ok := out["animals"].([]map[string]any)
	if !ok || len(animals) != 1 {
		t.Fatalf("animals = %v, want 1 entry", out["animals"])
	}

	entry := animals[0]
	if entry["name"] != "Leo" || entry["species"] != "Lion" {
		t.Fatalf("unexpected animal entry: %v", entry)
	}
	if entry["enclosure_id"] != int64(1) {
		t.Fatalf("enclosure_id = %v, want 1", entry["enclosure_id"])
	}
	if _, found := entry["zookeeper"]; found {
		t.Fatalf("animal entry must not carry back-reference to zookeeper: %v", entry)
	}

	nested, ok := entry["enclosure"].(map[string]any)
	if !ok {
		t.Fatalf("animal entry missing nested enclosure: %v", entry)
	}
	if nested["environment"] != "Savanna" || nested["open_to_visitors"] != true {
		t.Fatalf("unexpected nested enclosure: %v", nested)
	}
	if _, found := nested["animals"]; found {
		t.Fatalf("nested enclosure must not carry animals list: %v", nested)
	}
}

func TestSerialize_ZookeeperWithNAnimals(t *testing.T) {
	z := zoo.Zookeeper{ID: 2, Name: "Marta", Birthday: date(1985, time.June, 15)}
	for i := int64(1); i <= 3; i++ {
		z.Animals = append(z.Animals, zoo.Animal{
			ID:          i,
			Name:        "animal-" + string(rune('a'+i-1)),
			Species:     "Parrot",
			ZookeeperID: ptr(2),
			Zookeeper:   &zoo.Zookeeper{ID: 2, Name: "Marta"},
		})
	}

	out := zoo.Serialize(z, zoo.DefaultExclusions())

	animals, ok := out["animals"].([]map[string]any)
	if !ok || len(animals) != 3 {
		t.Fatalf("animals = %v, want 3 entries", out["animals"])
	}
	for _, entry := range animals {
		if _, found := entry["zookeeper"]; found {
			t.Errorf("animal entry carries zookeeper back-reference: %v", entry)
		}
		if entry["zookeeper_id"] != int64(2) {
			t.Errorf("zookeeper_id = %v, want 2", entry["zookeeper_id"])
		}
	}
}

func TestSerialize_EnclosureExcludesBackReference(t *testing.T) {
	e := zoo.Enclosure{
		ID:          3,
		Environment: "Aviary",
		Animals: []zoo.Animal{
			{ID: 5, Name: "Rio", Species: "Macaw", EnclosureID: ptr(3), Enclosure: &zoo.Enclosure{ID: 3}},
			{ID: 6, Name: "Blu", Species: "Macaw", EnclosureID: ptr(3), Enclosure: &zoo.Enclosure{ID: 3}},
		},
	}

	out := zoo.Serialize(e, zoo.DefaultExclusions())

	animals, ok := out["animals"].([]map[string]any)
	if !ok || len(animals) != 2 {
		t.Fatalf("animals = %v, want 2 entries", out["animals"])
	}
	for _, entry := range animals {
		if _, found := entry["enclosure"]; found {
			t.Errorf("animal entry carries enclosure back-reference: %v", entry)
		}
	}
}

func TestSerialize_AnimalRoot(t *testing.T) {
	alex := zoo.Zookeeper{
		ID:       1,
		Name:     "Alex",
		Birthday: date(1990, time.January, 1),
		Animals:  []zoo.Animal{{ID: 9, Name: "Leo", Species: "Lion"}},
	}
	savanna := zoo.Enclosure{
		ID:          1,
		Environment: "Savanna",
		Animals:     []zoo.Animal{{ID: 9, Name: "Leo", Species: "Lion"}},
	}
	leo := zoo.Animal{
		ID:          9,
		Name:        "Leo",
		Species:     "Lion",
		ZookeeperID: ptr(1),
		EnclosureID: ptr(1),
		Zookeeper:   &alex,
		Enclosure:   &savanna,
	}

	out := zoo.Serialize(leo, zoo.DefaultExclusions())

	zk, ok := out["zookeeper"].(map[string]any)
	if !ok {
		t.Fatalf("missing nested zookeeper: %v", out)
	}
	if _, found := zk["animals"]; found {
		t.Fatalf("nested zookeeper must not carry animals list: %v", zk)
	}
	if zk["name"] != "Alex" {
		t.Fatalf("nested zookeeper name = %v", zk["name"])
	}

	en, ok := out["enclosure"].(map[string]any)
	if !ok {
		t.Fatalf("missing nested enclosure: %v", out)
	}
	if _, found := en["animals"]; found {
		t.Fatalf("nested enclosure must not carry animals list: %v", en)
	}
}

func TestSerialize_UnloadedRelationsOmitted(t *testing.T) {
	leo := zoo.Animal{ID: 9, Name: "Leo", Species: "Lion"}

	out := zoo.Serialize(leo, zoo.DefaultExclusions())

	// FKs nulas siguen presentes; relaciones no cargadas no aparecen.
	if v, found := out["zookeeper_id"]; !found || v != nil {
		t.Fatalf("zookeeper_id = %v, want present and null", v)
	}
	if _, found := out["zookeeper"]; found {
		t.Fatalf("unloaded zookeeper relation must be omitted: %v", out)
	}
	if _, found := out["enclosure"]; found {
		t.Fatalf("unloaded enclosure relation must be omitted: %v", out)
	}
}

func TestSerialize_EmptyLoadedListStays(t *testing.T) {
	z := zoo.Zookeeper{ID: 4, Name: "Nadia", Animals: make([]zoo.Animal, 0)}

	out := zoo.Serialize(z, zoo.DefaultExclusions())

	animals, ok := out["animals"].([]map[string]any)
	if !ok {
		t.Fatalf("loaded empty list must serialize: %v", out)
	}
	if len(animals) != 0 {
		t.Fatalf("animals = %v, want empty", animals)
	}
}

func TestSerialize_CustomExclusionSet(t *testing.T) {
	z := zoo.Zookeeper{
		ID:      1,
		Name:    "Alex",
		Animals: []zoo.Animal{{ID: 1, Name: "Leo", Species: "Lion"}},
	}

	out := zoo.Serialize(z, zoo.ExclusionSet{zoo.KindZookeeper: {"animals"}})

	if _, found := out["animals"]; found {
		t.Fatalf("excluded relation still serialized: %v", out)
	}
}

func TestSerialize_EmptyRulesTerminate(t *testing.T) {
	// Grafo cíclico sin reglas: el guard de ancestros corta en vez de
	// recursionar sin fin.
	alex := zoo.Zookeeper{ID: 1, Name: "Alex"}
	leo := zoo.Animal{ID: 1, Name: "Leo", Species: "Lion", ZookeeperID: ptr(1), Zookeeper: &alex}
	alex.Animals = []zoo.Animal{leo}

	out := zoo.Serialize(alex, zoo.ExclusionSet{})

	animals, ok := out["animals"].([]map[string]any)
	if !ok || len(animals) != 1 {
		t.Fatalf("animals = %v, want 1 entry", out["animals"])
	}
	if _, found := animals[0]["zookeeper"]; found {
		t.Fatalf("ancestor re-entered during serialization: %v", animals[0])
	}
}
