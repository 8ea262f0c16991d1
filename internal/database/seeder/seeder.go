package seeder

import "context"

// Seeder loads fixed records and reports how many it inserted. A seeder
// that finds existing data inserts nothing.
type Seeder interface {
	Name() string
	Run(ctx context.Context) (int, error)
}
