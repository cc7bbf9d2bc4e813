package scraper

import (
	"context"

	"github.com/jimezsa/scholarcli/internal/models"
)

// Sample serves a fixed set of well-known programs. It needs no network and
// keeps a fresh catalog usable when every live site is down.
type Sample struct{}

func NewSample() *Sample {
	return &Sample{}
}

func (s *Sample) Name() string {
	return SourceSample
}

func (s *Sample) Scrape(ctx context.Context, params models.ScrapeParams) ([]models.Scholarship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := sampleRecords()
	if params.Limit > 0 && len(records) > params.Limit {
		records = records[:params.Limit]
	}
	return records, nil
}

type sampleRow struct {
	name, description, provider, eligibility, amount, currency string
	deadline, link, country, degree, subject, sourceName      string
	featured                                                  bool
}

var sampleRows = []sampleRow{
	{"Global Excellence Scholarship", "Award for outstanding international students pursuing undergraduate degrees", "International Education Foundation", "Minimum GPA 3.5, English proficiency, financial need", "50000", "USD", "2026-06-30", "https://example.com/apply/global-excellence", "International", "Undergraduate", "General", "Scholarship Hub", true},
	{"STEM Innovation Award", "Supporting students in Science, Technology, Engineering, and Mathematics", "TechForward Foundation", "Enrolled in STEM program, minimum GPA 3.2", "35000", "USD", "2026-05-15", "https://example.com/apply/stem-innovation", "USA", "Undergraduate", "STEM", "Scholarship Hub", true},
	{"Business Leadership Scholarship", "For students demonstrating leadership in business studies", "Global Business Council", "Business major, leadership experience, GPA 3.3+", "25000", "USD", "2026-07-31", "https://example.com/apply/business-leadership", "International", "Undergraduate", "Business", "Scholarship Hub", false},
	{"UK Research Masters Scholarship", "Full tuition scholarship for postgraduate research degrees", "UK Universities Consortium", "First-class honors undergraduate, research proposal", "45000", "GBP", "2026-04-30", "https://example.com/apply/uk-research", "UK", "Postgraduate", "Research", "Scholarship Hub", true},
	{"Canadian International Student Bursary", "Financial support for international students at Canadian universities", "Canadian Education Association", "International student, enrolled in Canadian institution", "20000", "CAD", "2026-08-15", "https://example.com/apply/canada-bursary", "Canada", "Undergraduate", "General", "Scholarship Hub", false},
	{"Australian Government Scholarship", "Supporting international students in Australian universities", "Australian Department of Education", "Non-Australian citizen, eligible degree program", "40000", "AUD", "2026-09-30", "https://example.com/apply/australia-gov", "Australia", "Undergraduate", "General", "Scholarship Hub", false},
	{"Engineering Excellence Program", "Scholarship for exceptional engineering students", "Engineering Association International", "Engineering major, GPA 3.4+, technical portfolio", "30000", "USD", "2026-06-15", "https://example.com/apply/engineering-excel", "International", "Undergraduate", "STEM", "Scholarship Hub", false},
	{"Arts & Humanities Award", "Supporting creativity and academic excellence in humanities", "Global Arts Foundation", "Humanities major, portfolio or academic excellence", "18000", "USD", "2026-05-31", "https://example.com/apply/arts-humanities", "International", "Undergraduate", "Humanities", "Scholarship Hub", false},
	{"Fulbright US Student Program", "Comprehensive funding for graduate study, research, and teaching abroad", "U.S. Department of State", "U.S. citizen, bachelor's degree, English proficiency", "Variable", "USD", "2026-10-15", "https://example.com/apply/fulbright", "International", "Postgraduate", "General", "US State Department", true},
	{"German Excellence Scholarship", "Support for exceptional students pursuing studies in Germany", "DAAD - German Academic Exchange Service", "Bachelor's graduate, proficiency in German or English", "34000", "EUR", "2026-12-31", "https://example.com/apply/daad", "Germany", "Postgraduate", "General", "DAAD", false},
}

func sampleRecords() []models.Scholarship {
	records := make([]models.Scholarship, 0, len(sampleRows))
	for _, row := range sampleRows {
		records = append(records, models.Scholarship{
			Name:            row.name,
			Description:     models.StringPtr(row.description),
			Provider:        models.StringPtr(row.provider),
			Eligibility:     models.StringPtr(row.eligibility),
			Amount:          models.StringPtr(row.amount),
			Currency:        models.StringPtr(row.currency),
			Deadline:        models.StringPtr(row.deadline),
			ApplicationLink: models.StringPtr(row.link),
			Country:         row.country,
			DegreeLevel:     row.degree,
			Subject:         row.subject,
			IsFeatured:      row.featured,
			SourceName:      models.StringPtr(row.sourceName),
		})
	}
	return records
}
