// Package store provides a SQLite-backed archive of exported build reports.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/ethicsim/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver
)

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when a report id is not in the archive.
var ErrNotFound = errors.New("report not found")

// Report is one archived build summary.
type Report struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	Tier         model.Tier
	Total        decimal.Decimal
	Spent        decimal.Decimal
	Remaining    decimal.Decimal
	SpentPercent decimal.Decimal
	Efficiency   model.Efficiency
	Selections   model.Selections
	ExportPath   string
	Text         string
}

// NewReport builds an archive record from a summary and its rendered text.
func NewReport(s model.Summary, text string) Report {
	return Report{
		ID:           uuid.New(),
		CreatedAt:    time.Now().UTC(),
		Tier:         s.Budget.Tier,
		Total:        s.Budget.Total,
		Spent:        s.Budget.Spent(),
		Remaining:    s.Budget.Remaining,
		SpentPercent: s.SpentPercent,
		Efficiency:   s.Efficiency,
		Selections:   s.Selections.Clone(),
		Text:         text,
	}
}

// Archive is an append-only log of exported reports. It never restores a
// session; reports are read back for display only.
type Archive struct {
	db *sql.DB
}

// Open opens or creates the archive database at the given path.
func Open(dbPath string) (*Archive, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// SaveReport appends r and its selections.
func (a *Archive) SaveReport(r Report) error {
	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	adapt := 0
	if r.Selections.AdaptToUser {
		adapt = 1
	}

	_, err = tx.Exec(`INSERT INTO reports
		(report_id, created_at, tier, total_budget, spent, remaining,
		 spent_percent, efficiency, adapt_to_user, export_path, summary_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.CreatedAt.UTC().Format(timeLayout), string(r.Tier),
		r.Total.String(), r.Spent.String(), r.Remaining.String(),
		r.SpentPercent.String(), string(r.Efficiency), adapt, r.ExportPath, r.Text,
	)
	if err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}

	for _, c := range model.Categories {
		for i, id := range r.Selections.Active(c) {
			_, err = tx.Exec(`INSERT INTO report_selections
				(report_id, category, option_id, position)
				VALUES (?, ?, ?, ?)`,
				r.ID.String(), string(c), string(id), i,
			)
			if err != nil {
				return fmt.Errorf("inserting selection: %w", err)
			}
		}
	}

	return tx.Commit()
}

// ListReports returns the newest reports first, without their selections.
// A limit of zero or less returns every report.
func (a *Archive) ListReports(limit int) ([]Report, error) {
	query := `SELECT report_id, created_at, tier, total_budget, spent, remaining,
		spent_percent, efficiency, adapt_to_user, export_path, summary_text
		FROM reports ORDER BY created_at DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := a.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetReport loads one report with its selections. id may be a unique prefix
// of the full report id.
func (a *Archive) GetReport(id string) (Report, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if !validIDPrefix(id) {
		return Report{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	rows, err := a.db.Query(`SELECT report_id, created_at, tier, total_budget, spent, remaining,
		spent_percent, efficiency, adapt_to_user, export_path, summary_text
		FROM reports WHERE substr(report_id, 1, length(?)) = ? LIMIT 2`, id, id)
	if err != nil {
		return Report{}, err
	}

	var matches []Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			_ = rows.Close()
			return Report{}, err
		}
		matches = append(matches, r)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return Report{}, err
	}
	_ = rows.Close()

	switch len(matches) {
	case 0:
		return Report{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
	default:
		return Report{}, fmt.Errorf("report id %q is ambiguous", id)
	}

	r := matches[0]
	if err := a.loadSelections(&r); err != nil {
		return Report{}, err
	}
	return r, nil
}

// validIDPrefix reports whether id can be the start of a report uuid.
func validIDPrefix(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune("0123456789abcdef-", r) {
			return false
		}
	}
	return true
}

func (a *Archive) loadSelections(r *Report) error {
	rows, err := a.db.Query(`SELECT category, option_id FROM report_selections
		WHERE report_id = ? ORDER BY category, position`, r.ID.String())
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c, id string
		if err := rows.Scan(&c, &id); err != nil {
			return err
		}
		opt := model.OptionID(id)
		switch model.Category(c) {
		case model.CategoryData:
			r.Selections.Data = append(r.Selections.Data, opt)
		case model.CategoryFiltering:
			r.Selections.Filtering = opt
		case model.CategoryBehavior:
			r.Selections.Behavior = opt
		case model.CategoryBias:
			r.Selections.Bias = opt
		}
	}
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(row scanner) (Report, error) {
	var (
		r                            Report
		id, created, tier, eff       string
		total, spent, remaining, pct string
		adapt                        int
		exportPath                   sql.NullString
	)
	if err := row.Scan(&id, &created, &tier, &total, &spent, &remaining,
		&pct, &eff, &adapt, &exportPath, &r.Text); err != nil {
		return Report{}, err
	}

	var err error
	if r.ID, err = uuid.Parse(id); err != nil {
		return Report{}, fmt.Errorf("parsing report id: %w", err)
	}
	if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return Report{}, fmt.Errorf("parsing created_at: %w", err)
	}
	for _, f := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&r.Total, total}, {&r.Spent, spent}, {&r.Remaining, remaining}, {&r.SpentPercent, pct},
	} {
		if *f.dst, err = decimal.NewFromString(f.src); err != nil {
			return Report{}, fmt.Errorf("parsing amount %q: %w", f.src, err)
		}
	}

	r.Tier = model.Tier(tier)
	r.Efficiency = model.Efficiency(eff)
	r.Selections.Tier = r.Tier
	r.Selections.AdaptToUser = adapt == 1
	r.ExportPath = exportPath.String
	return r, nil
}
