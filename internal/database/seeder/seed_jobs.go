package seeder

import (
	"context"
	"fmt"

	"fairchance-board/internal/database"
	"fairchance-board/internal/domain/job"
)

// JobsSeeder inserts the sample postings already approved and linked to the
// sample employer of the same company name. A posting is skipped when an
// identical title/company pair exists.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

var sampleJobs = []job.NewJob{
	{
		Title:                  "Warehouse Associate",
		Company:                "Second Chance Logistics",
		Location:               "Dallas, TX",
		Description:            "We are actively hiring individuals with criminal backgrounds. Full-time warehouse position with benefits. Responsibilities include loading, unloading, inventory management.",
		Salary:                 text("$15-18/hour"),
		JobType:                text("Full-time"),
		FelonyFriendly:         true,
		BackgroundCheckDetails: text("We conduct background checks but consider all applicants regardless of criminal history"),
		ContactEmail:           text("jobs@secondchancelogistics.com"),
		ApplicationURL:         text("https://example.com/apply"),
	},
	{
		Title:                  "Kitchen Staff",
		Company:                "Fresh Start Cafe",
		Location:               "Austin, TX",
		Description:            "Entry-level kitchen position. We believe in second chances and actively recruit from reentry programs. Training provided.",
		Salary:                 text("$14/hour + tips"),
		JobType:                text("Full-time"),
		FelonyFriendly:         true,
		BackgroundCheckDetails: text("No background check required"),
		ContactEmail:           text("hiring@freshstartcafe.com"),
		ContactPhone:           text("512-555-0123"),
		ApplicationURL:         text("https://example.com/apply"),
	},
	{
		Title:                  "Construction Laborer",
		Company:                "Rebuild Construction Co.",
		Location:               "Houston, TX",
		Description:            "Construction laborer needed. Felony-friendly employer. Must be willing to work outdoors and lift 50lbs. PPE provided.",
		Salary:                 text("$16-20/hour based on experience"),
		JobType:                text("Full-time"),
		FelonyFriendly:         true,
		BackgroundCheckDetails: text("Background check conducted but felonies are not automatically disqualifying"),
		ContactEmail:           text("careers@rebuildconstruction.com"),
		ContactPhone:           text("713-555-0199"),
		ApplicationURL:         text("https://example.com/apply"),
	},
	{
		Title:                  "Delivery Driver",
		Company:                "Fair Chance Transport",
		Location:               "San Antonio, TX",
		Description:            "Local delivery routes. Valid drivers license required. We partner with reentry programs and welcome applications from those with criminal records.",
		Salary:                 text("$17/hour + mileage"),
		JobType:                text("Full-time"),
		FelonyFriendly:         true,
		BackgroundCheckDetails: text("Driving record check required, criminal background considered on case-by-case basis"),
		ContactEmail:           text("drivers@fairchancetransport.com"),
		ApplicationURL:         text("https://example.com/apply"),
	},
	{
		Title:                  "Manufacturing Operator",
		Company:                "New Horizons Manufacturing",
		Location:               "Fort Worth, TX",
		Description:            "Operating machinery in climate-controlled facility. No experience necessary, full training provided. Benefits after 90 days.",
		Salary:                 text("$16.50/hour"),
		JobType:                text("Full-time"),
		FelonyFriendly:         true,
		BackgroundCheckDetails: text("We are a Ban the Box employer and consider all applicants fairly"),
		ContactEmail:           text("hr@newhorizonsmfg.com"),
		ContactPhone:           text("817-555-0156"),
		ApplicationURL:         text("https://example.com/apply"),
	},
}

func text(s string) *string { return &s }

func (JobsSeeder) Run(ctx context.Context, db database.DB) (int64, error) {
	if err := RequireColumns(ctx, db, "jobs", "id", "title", "company", "status", "employer_id", "view_count"); err != nil {
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
	for _, it := range sampleJobs {
		affected, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (
				title, company, location, description, salary, job_type,
				felony_friendly, background_check_details, contact_email,
				contact_phone, application_url, employer_id, status, view_count
			)
			SELECT $1::text, $2::text, $3::text, $4::text, $5::text, $6::text,
				$7::boolean, $8::text, $9::text, $10::text, $11::text,
				(SELECT id FROM employers WHERE name = $2::text AND is_active = true), $12::text, 0
			WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE title = $1::text AND company = $2::text)`,
			it.Title,
			it.Company,
			it.Location,
			it.Description,
			it.Salary,
			it.JobType,
			it.FelonyFriendly,
			it.BackgroundCheckDetails,
			it.ContactEmail,
			it.ContactPhone,
			it.ApplicationURL,
			string(job.StatusApproved),
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
