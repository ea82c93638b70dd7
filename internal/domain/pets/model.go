package pets

import "slices"

// Species define las especies que puede tomar una mascota generada.
// @Enum Dog, Cat, Bird, Fish, Rabbit, Hamster, Guinea Pig
type Species string

const (
	SpeciesDog       Species = "Dog"
	SpeciesCat       Species = "Cat"
	SpeciesBird      Species = "Bird"
	SpeciesFish      Species = "Fish"
	SpeciesRabbit    Species = "Rabbit"
	SpeciesHamster   Species = "Hamster"
	SpeciesGuineaPig Species = "Guinea Pig"
)

// Rangos de muestreo (inclusive).
const (
	MinID  = 1000
	MaxID  = 9999
	MinAge = 1
	MaxAge = 15
)

var allSpecies = []Species{
	SpeciesDog,
	SpeciesCat,
	SpeciesBird,
	SpeciesFish,
	SpeciesRabbit,
	SpeciesHamster,
	SpeciesGuineaPig,
}

var names = []string{
	"Max", "Buddy", "Charlie", "Jack", "Cooper", "Rocky", "Toby", "Tucker",
	"Jake", "Bear", "Duke", "Teddy", "Oliver", "Riley", "Bailey", "Bentley",
	"Milo", "Buster", "Cody", "Dexter", "Winston", "Murphy", "Leo", "Lucky",
}

var colors = []string{"Brown", "Black", "White", "Golden", "Gray", "Spotted", "Orange", "Mixed"}

// Pet es un registro fabricado; vive solo lo que dura la respuesta.
type Pet struct {
	ID      int
	Name    string
	Species Species
	Age     int
	Color   string
}

// AllSpecies devuelve una copia de las especies soportadas.
func AllSpecies() []Species { return slices.Clone(allSpecies) }

func Names() []string { return slices.Clone(names) }

func Colors() []string { return slices.Clone(colors) }

func IsValidSpecies(s Species) bool { return slices.Contains(allSpecies, s) }

func IsValidName(s string) bool { return slices.Contains(names, s) }

func IsValidColor(s string) bool { return slices.Contains(colors, s) }
