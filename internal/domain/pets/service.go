package pets

import (
	"context"
	"errors"
)

const (
	DefaultCount = 1
	MaxCount     = 100
)

var (
	ErrCountNotPositive = errors.New("count must be a positive integer")
	ErrCountTooLarge    = errors.New("count cannot exceed 100")
)

type Service struct {
	gen *Generator
}

func NewService(gen *Generator) *Service {
	if gen == nil {
		gen = NewGenerator(nil)
	}
	return &Service{gen: gen}
}

// Generate valida count y llama al generador exactamente count veces.
func (s *Service) Generate(ctx context.Context, count int) ([]Pet, error) {
	if count < 1 {
		generateRejectsTotal.WithLabelValues("not_positive").Inc()
		return nil, ErrCountNotPositive
	}
	if count > MaxCount {
		generateRejectsTotal.WithLabelValues("too_large").Inc()
		return nil, ErrCountTooLarge
	}

	out := make([]Pet, 0, count)
	for range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, s.gen.Generate())
	}

	petsGeneratedTotal.Add(float64(len(out)))
	return out, nil
}
