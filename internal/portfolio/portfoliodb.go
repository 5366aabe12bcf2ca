package portfolio

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Package-level singleton, set from main.go.
var contentDB *PortfolioDB

// SetContentDB sets the package-level content DB instance.
func SetContentDB(db *PortfolioDB) { contentDB = db }

// GetContentDB returns the package-level content DB instance (may be nil).
func GetContentDB() *PortfolioDB { return contentDB }

// PortfolioDB holds the pgx connection pool for the content store. It
// implements ContentStore with natural-key upserts: personal_info is a
// singleton row, experiences are keyed by company+title, skills by name,
// projects by slug, education by school+degree, certifications by name.
type PortfolioDB struct {
	pool *pgxpool.Pool
}

// ConnectPortfolioDB creates a pgx pool and runs schema migrations.
func ConnectPortfolioDB(ctx context.Context, databaseURL string) (*PortfolioDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db := &PortfolioDB{pool: pool}
	if err := db.runMigrations(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("content postgres connected", slog.String("addr", config.ConnConfig.Host))
	return db, nil
}

func (db *PortfolioDB) Close() {
	db.pool.Close()
}

func (db *PortfolioDB) runMigrations(ctx context.Context) error {
	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		data, err := schemaFS.ReadFile("schema/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		if _, err := db.pool.Exec(ctx, string(data)); err != nil {
			return fmt.Errorf("execute %s: %w", entry.Name(), err)
		}
		slog.Info("migration applied", slog.String("file", entry.Name()))
	}
	return nil
}

// --- ContentStore writes ---

// UpsertHero writes the singleton personal_info row (id fixed at 1).
func (db *PortfolioDB) UpsertHero(ctx context.Context, h HeroContent) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO personal_info (id, name, title, tagline, summary, location, updated_at)
		 VALUES (1, $1, $2, $3, $4, $5, now())
		 ON CONFLICT (id) DO UPDATE SET
		   name = EXCLUDED.name, title = EXCLUDED.title, tagline = EXCLUDED.tagline,
		   summary = EXCLUDED.summary, location = EXCLUDED.location, updated_at = now()`,
		h.Name, h.Title, h.Tagline, h.Summary, h.Location,
	)
	return err
}

func (db *PortfolioDB) UpsertExperience(ctx context.Context, e ExperienceContent) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO experiences (company, title, start_date, end_date, description, achievements, featured, display_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (company, title) DO UPDATE SET
		   start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date,
		   description = EXCLUDED.description, achievements = EXCLUDED.achievements,
		   featured = EXCLUDED.featured, display_order = EXCLUDED.display_order`,
		e.Company, e.Title, e.StartDate, e.EndDate, e.Description, e.Achievements, e.Featured, e.DisplayOrder,
	)
	return err
}

func (db *PortfolioDB) UpsertSkill(ctx context.Context, s SkillContent) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO skills (name, category, level, icon_url)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO UPDATE SET
		   category = EXCLUDED.category, level = EXCLUDED.level, icon_url = EXCLUDED.icon_url`,
		s.Name, s.Category, s.Level, s.IconURL,
	)
	return err
}

func (db *PortfolioDB) UpsertProject(ctx context.Context, p ProjectContent) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO projects (slug, title, description, technologies, demo_url, github_url, status, featured)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (slug) DO UPDATE SET
		   title = EXCLUDED.title, description = EXCLUDED.description,
		   technologies = EXCLUDED.technologies, demo_url = EXCLUDED.demo_url,
		   github_url = EXCLUDED.github_url, status = EXCLUDED.status, featured = EXCLUDED.featured`,
		p.Slug, p.Title, p.Description, p.Technologies, p.DemoURL, p.GithubURL, p.Status, p.Featured,
	)
	return err
}

func (db *PortfolioDB) UpsertEducation(ctx context.Context, e EducationContent) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO education (school, degree, field, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (school, degree) DO UPDATE SET
		   field = EXCLUDED.field, start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date`,
		e.School, e.Degree, e.Field, e.StartDate, e.EndDate,
	)
	return err
}

func (db *PortfolioDB) UpsertCertification(ctx context.Context, c CertificationContent) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO certifications (name, issuer, date, credential_url)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO UPDATE SET
		   issuer = EXCLUDED.issuer, date = EXCLUDED.date, credential_url = EXCLUDED.credential_url`,
		c.Name, c.Issuer, c.Date, c.CredentialURL,
	)
	return err
}

// AppendImportLog records one injection run. Log rows are append-only;
// nothing in this subsystem updates or deletes them.
func (db *PortfolioDB) AppendImportLog(ctx context.Context, recordsInjected int, errorDetail string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO import_logs (records_injected, error_detail, created_at)
		 VALUES ($1, $2, now())`,
		recordsInjected, errorDetail,
	)
	return err
}

// --- Content reads (export + posts) ---

// PortfolioExport bundles every content collection for the export tool.
type PortfolioExport struct {
	Hero           *HeroContent           `json:"hero,omitempty"`
	Experience     []ExperienceContent    `json:"experience"`
	Skills         []SkillContent         `json:"skills"`
	Projects       []ProjectContent       `json:"projects"`
	Education      []EducationContent     `json:"education"`
	Certifications []CertificationContent `json:"certifications"`
	Posts          []Post                 `json:"posts"`
}

// Post is one blog post managed by the CMS side of the store.
type Post struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
	CreatedAt string `json:"created_at,omitempty"`
}

// GetHero returns the singleton personal_info row, or nil if unset.
func (db *PortfolioDB) GetHero(ctx context.Context) (*HeroContent, error) {
	var h HeroContent
	err := db.pool.QueryRow(ctx,
		`SELECT name, title, tagline, summary, location FROM personal_info WHERE id = 1`,
	).Scan(&h.Name, &h.Title, &h.Tagline, &h.Summary, &h.Location)
	if err != nil {
		return nil, nil //nolint:nilerr // absent singleton is not an error
	}
	return &h, nil
}

func (db *PortfolioDB) ListExperiences(ctx context.Context) ([]ExperienceContent, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT company, title, start_date, COALESCE(end_date,''), description, achievements, featured, display_order
		 FROM experiences ORDER BY display_order, company`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ExperienceContent
	for rows.Next() {
		var e ExperienceContent
		if err := rows.Scan(&e.Company, &e.Title, &e.StartDate, &e.EndDate,
			&e.Description, &e.Achievements, &e.Featured, &e.DisplayOrder); err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

func (db *PortfolioDB) ListSkills(ctx context.Context) ([]SkillContent, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, category, level, icon_url FROM skills ORDER BY level DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SkillContent
	for rows.Next() {
		var s SkillContent
		if err := rows.Scan(&s.Name, &s.Category, &s.Level, &s.IconURL); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

func (db *PortfolioDB) ListProjects(ctx context.Context) ([]ProjectContent, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT slug, title, description, technologies, COALESCE(demo_url,''), COALESCE(github_url,''), status, featured
		 FROM projects ORDER BY featured DESC, slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ProjectContent
	for rows.Next() {
		var p ProjectContent
		if err := rows.Scan(&p.Slug, &p.Title, &p.Description, &p.Technologies,
			&p.DemoURL, &p.GithubURL, &p.Status, &p.Featured); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

func (db *PortfolioDB) ListEducation(ctx context.Context) ([]EducationContent, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT school, degree, field, COALESCE(start_date,''), COALESCE(end_date,'') FROM education ORDER BY school, degree`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []EducationContent
	for rows.Next() {
		var e EducationContent
		if err := rows.Scan(&e.School, &e.Degree, &e.Field, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

func (db *PortfolioDB) ListCertifications(ctx context.Context) ([]CertificationContent, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, issuer, COALESCE(date,''), COALESCE(credential_url,'') FROM certifications ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []CertificationContent
	for rows.Next() {
		var c CertificationContent
		if err := rows.Scan(&c.Name, &c.Issuer, &c.Date, &c.CredentialURL); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

// UpsertPost writes a blog post keyed by slug.
func (db *PortfolioDB) UpsertPost(ctx context.Context, p Post) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO posts (slug, title, body, published, created_at)
		 VALUES ($1, $2, $3, $4, now())
		 ON CONFLICT (slug) DO UPDATE SET
		   title = EXCLUDED.title, body = EXCLUDED.body, published = EXCLUDED.published`,
		p.Slug, p.Title, p.Body, p.Published,
	)
	return err
}

func (db *PortfolioDB) ListPosts(ctx context.Context) ([]Post, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT slug, title, body, published, created_at::text FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.Slug, &p.Title, &p.Body, &p.Published, &p.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// Export reads every collection into one bundle.
func (db *PortfolioDB) Export(ctx context.Context) (*PortfolioExport, error) {
	hero, err := db.GetHero(ctx)
	if err != nil {
		return nil, fmt.Errorf("export hero: %w", err)
	}
	experiences, err := db.ListExperiences(ctx)
	if err != nil {
		return nil, fmt.Errorf("export experiences: %w", err)
	}
	skills, err := db.ListSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("export skills: %w", err)
	}
	projects, err := db.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("export projects: %w", err)
	}
	education, err := db.ListEducation(ctx)
	if err != nil {
		return nil, fmt.Errorf("export education: %w", err)
	}
	certifications, err := db.ListCertifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("export certifications: %w", err)
	}
	posts, err := db.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("export posts: %w", err)
	}
	return &PortfolioExport{
		Hero:           hero,
		Experience:     experiences,
		Skills:         skills,
		Projects:       projects,
		Education:      education,
		Certifications: certifications,
		Posts:          posts,
	}, nil
}
