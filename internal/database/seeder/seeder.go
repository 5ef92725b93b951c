package seeder

import (
	"context"

	"fairchance-board/internal/database"
)

// Seeder inserts sample rows. Run must be safe to repeat and reports how many
// rows it actually inserted.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) (int64, error)
}
