package portfolio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_portfolio/internal/engine"
)

// ContentStore is the write capability the bulk injector needs from the
// content store. Every method is an idempotent upsert keyed by the
// record's natural key; AppendImportLog appends exactly one audit row per
// injection run. The pgx-backed implementation is PortfolioDB; tests
// substitute fakes.
type ContentStore interface {
	UpsertHero(ctx context.Context, h HeroContent) error
	UpsertExperience(ctx context.Context, e ExperienceContent) error
	UpsertSkill(ctx context.Context, s SkillContent) error
	UpsertProject(ctx context.Context, p ProjectContent) error
	UpsertEducation(ctx context.Context, e EducationContent) error
	UpsertCertification(ctx context.Context, c CertificationContent) error
	AppendImportLog(ctx context.Context, recordsInjected int, errorDetail string) error
}

// InjectionResult summarizes one bulk-injection run. Success is true iff
// no per-record error occurred; RecordsInjected counts every write that
// succeeded regardless of failures elsewhere in the batch.
type InjectionResult struct {
	Success         bool   `json:"success"`
	RecordsInjected int    `json:"records_injected"`
	Error           string `json:"error,omitempty"`

	// Failed counts per-record errors. Carried for metrics; the wire
	// shape stays success/records_injected/error.
	Failed int `json:"-"`
}

// InjectPortfolioContent upserts all records of a content map in fixed
// collection order: hero, experience, skills, projects, education,
// certifications. A failing record is recorded as "{context}: {message}"
// and never aborts the batch; partial success is an expected outcome.
// One import-log row is appended after all groups are attempted. Only a
// failure writing that log row (or another fault outside per-record
// scope) returns an error, with a zero result.
func InjectPortfolioContent(ctx context.Context, store ContentStore, m *PortfolioContentMap) (*InjectionResult, error) {
	injected := 0
	var errs []string

	record := func(label string, err error) {
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %s", label, err.Error()))
			return
		}
		injected++
	}

	record("hero "+m.Hero.Name, store.UpsertHero(ctx, m.Hero))
	for _, e := range m.Experience {
		record("experience "+e.Company+"/"+e.Title, store.UpsertExperience(ctx, e))
	}
	for _, s := range m.Skills {
		record("skill "+s.Name, store.UpsertSkill(ctx, s))
	}
	for _, p := range m.Projects {
		record("project "+p.Slug, store.UpsertProject(ctx, p))
	}
	for _, e := range m.Education {
		record("education "+e.School, store.UpsertEducation(ctx, e))
	}
	for _, c := range m.Certifications {
		record("certification "+c.Name, store.UpsertCertification(ctx, c))
	}

	errorDetail := strings.Join(errs, "; ")
	if err := store.AppendImportLog(ctx, injected, errorDetail); err != nil {
		return nil, fmt.Errorf("inject: append import log: %w", err)
	}

	slog.Info("portfolio import finished",
		slog.Int("records_injected", injected),
		slog.Int("errors", len(errs)),
	)
	if len(errs) > 0 {
		slog.Warn("portfolio import had per-record failures",
			slog.String("detail", engine.Truncate(errorDetail, 300)),
		)
	}
	return &InjectionResult{
		Success:         len(errs) == 0,
		RecordsInjected: injected,
		Error:           errorDetail,
		Failed:          len(errs),
	}, nil
}
