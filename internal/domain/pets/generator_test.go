package pets

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestGenerate_FieldsWithinFixedSets(t *testing.T) {
	g := NewGenerator(nil)

	for i := 0; i < 2000; i++ {
		p := g.Generate()

		assert.GreaterOrEqual(t, p.ID, MinID)
		assert.LessOrEqual(t, p.ID, MaxID)
		assert.GreaterOrEqual(t, p.Age, MinAge)
		assert.LessOrEqual(t, p.Age, MaxAge)
		assert.True(t, IsValidName(p.Name), "name %q", p.Name)
		assert.True(t, IsValidSpecies(p.Species), "species %q", p.Species)
		assert.True(t, IsValidColor(p.Color), "color %q", p.Color)
	}
}

func TestGenerate_SameSeedSameRecords(t *testing.T) {
	a := NewGenerator(seeded(42))
	b := NewGenerator(seeded(42))

	for i := 0; i < 50; i++ {
		require.Equal(t, a.Generate(), b.Generate())
	}
}

func TestGenerate_CoversEveryValue(t *testing.T) {
	g := NewGenerator(seeded(7))

	seenSpecies := map[Species]bool{}
	seenColors := map[string]bool{}
	seenAges := map[int]bool{}
	for i := 0; i < 5000; i++ {
		p := g.Generate()
		seenSpecies[p.Species] = true
		seenColors[p.Color] = true
		seenAges[p.Age] = true
	}

	assert.Len(t, seenSpecies, len(AllSpecies()))
	assert.Len(t, seenColors, len(Colors()))
	assert.Len(t, seenAges, MaxAge-MinAge+1)
}

// fixedSource devuelve siempre el extremo pedido para probar los bordes de intRange.
type fixedSource struct{ max bool }

func (f fixedSource) IntN(n int) int {
	if f.max {
		return n - 1
	}
	return 0
}

func TestGenerate_RangeBoundsAreInclusive(t *testing.T) {
	lo := NewGenerator(fixedSource{max: false}).Generate()
	hi := NewGenerator(fixedSource{max: true}).Generate()

	assert.Equal(t, MinID, lo.ID)
	assert.Equal(t, MinAge, lo.Age)
	assert.Equal(t, "Max", lo.Name)
	assert.Equal(t, SpeciesDog, lo.Species)
	assert.Equal(t, "Brown", lo.Color)

	assert.Equal(t, MaxID, hi.ID)
	assert.Equal(t, MaxAge, hi.Age)
	assert.Equal(t, "Lucky", hi.Name)
	assert.Equal(t, SpeciesGuineaPig, hi.Species)
	assert.Equal(t, "Mixed", hi.Color)
}

func TestNewPet_SuppliedOrRandomID(t *testing.T) {
	g := NewGenerator(seeded(1))

	p := g.NewPet(NewPetInput{ID: 12, Name: "Leo", Species: SpeciesCat, Age: 3, Color: "Gray"})
	assert.Equal(t, Pet{ID: 12, Name: "Leo", Species: SpeciesCat, Age: 3, Color: "Gray"}, p)

	p = g.NewPet(NewPetInput{Name: "Leo", Species: SpeciesCat, Age: 3, Color: "Gray"})
	assert.GreaterOrEqual(t, p.ID, MinID)
	assert.LessOrEqual(t, p.ID, MaxID)
}

func TestLookups_ReturnCopies(t *testing.T) {
	n := Names()
	n[0] = "Changed"
	assert.Equal(t, "Max", Names()[0])

	s := AllSpecies()
	s[0] = "Dragon"
	assert.Equal(t, SpeciesDog, AllSpecies()[0])
	assert.False(t, IsValidSpecies("Dragon"))

	assert.Len(t, Names(), 24)
	assert.Len(t, AllSpecies(), 7)
	assert.Len(t, Colors(), 8)
}
