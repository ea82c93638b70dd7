package pets

import "math/rand/v2"

// Source es la fuente de aleatoriedad del generador.
// IntN devuelve un entero en [0, n).
type Source interface {
	IntN(n int) int
}

// globalSource usa las funciones top-level de math/rand/v2 (seguras para concurrencia).
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator fabrica mascotas a partir de las listas fijas.
// Con la fuente por defecto el resultado no es reproducible.
type Generator struct {
	src Source
}

// NewGenerator crea un generador. src nil => fuente global.
// Una fuente inyectada (p.ej. rand.New(rand.NewPCG(...))) no es segura para uso
// concurrente; solo tiene sentido en tests.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// NewPetInput son los datos para construir una mascota a mano.
// ID 0 => se asigna uno al azar en [MinID, MaxID].
type NewPetInput struct {
	ID      int
	Name    string
	Species Species
	Age     int
	Color   string
}

func (g *Generator) NewPet(in NewPetInput) Pet {
	id := in.ID
	if id == 0 {
		id = g.intRange(MinID, MaxID)
	}
	return Pet{
		ID:      id,
		Name:    in.Name,
		Species: in.Species,
		Age:     in.Age,
		Color:   in.Color,
	}
}

// Generate devuelve una mascota con cada campo muestreado de forma independiente y uniforme.
func (g *Generator) Generate() Pet {
	return g.NewPet(NewPetInput{
		Name:    pick(g.src, names),
		Species: pick(g.src, allSpecies),
		Age:     g.intRange(MinAge, MaxAge),
		Color:   pick(g.src, colors),
	})
}

// intRange muestrea en [lo, hi], ambos inclusive.
func (g *Generator) intRange(lo, hi int) int {
	return lo + g.src.IntN(hi-lo+1)
}

func pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
