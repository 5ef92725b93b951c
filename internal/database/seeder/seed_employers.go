package seeder

import (
	"context"
	"fmt"

	"fairchance-board/internal/database"
)

type EmployersSeeder struct{}

func (EmployersSeeder) Name() string { return "employers" }

type sampleEmployer struct {
	Name         string
	Description  string
	Website      string
	ContactEmail string
	ContactPhone *string
}

func phone(s string) *string { return &s }

var sampleEmployers = []sampleEmployer{
	{
		Name:         "Second Chance Logistics",
		Description:  "Regional warehousing and distribution company hiring from reentry programs.",
		Website:      "https://example.com/second-chance-logistics",
		ContactEmail: "jobs@secondchancelogistics.com",
	},
	{
		Name:         "Fresh Start Cafe",
		Description:  "Neighborhood cafe that trains and employs people returning from incarceration.",
		Website:      "https://example.com/fresh-start-cafe",
		ContactEmail: "hiring@freshstartcafe.com",
		ContactPhone: phone("512-555-0123"),
	},
	{
		Name:         "Rebuild Construction Co.",
		Description:  "General contractor where felonies are not automatically disqualifying.",
		Website:      "https://example.com/rebuild-construction",
		ContactEmail: "careers@rebuildconstruction.com",
		ContactPhone: phone("713-555-0199"),
	},
	{
		Name:         "Fair Chance Transport",
		Description:  "Local delivery fleet partnering with reentry programs.",
		Website:      "https://example.com/fair-chance-transport",
		ContactEmail: "drivers@fairchancetransport.com",
	},
	{
		Name:         "New Horizons Manufacturing",
		Description:  "Ban the Box manufacturer with paid on-the-job training.",
		Website:      "https://example.com/new-horizons-manufacturing",
		ContactEmail: "hr@newhorizonsmfg.com",
		ContactPhone: phone("817-555-0156"),
	},
}

func (EmployersSeeder) Run(ctx context.Context, db database.DB) (int64, error) {
	if err := RequireColumns(ctx, db, "employers", "id", "name", "description", "website", "contact_email", "contact_phone", "verified", "felony_friendly"); err != nil {
		return 0, err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var inserted int64
	for _, it := range sampleEmployers {
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO employers (name, description, website, contact_email, contact_phone, verified, felony_friendly)
			 VALUES ($1, $2, $3, $4, $5, true, true)
			 ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Description,
			it.Website,
			it.ContactEmail,
			it.ContactPhone,
		)
		if err != nil {
			return 0, err
		}
		inserted += affected
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}
