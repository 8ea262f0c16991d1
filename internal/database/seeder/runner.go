package seeder

import (
	"context"
	"fmt"
	"log"
)

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context) error {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		n, err := s.Run(ctx)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if n == 0 {
			logger.Printf("[Seeder] skipped name=%s reason=not_empty", s.Name())
			continue
		}
		logger.Printf("[Seeder] seeded name=%s rows=%d", s.Name(), n)
	}
	return nil
}
