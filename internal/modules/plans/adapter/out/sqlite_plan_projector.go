package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"studyplanner/internal/modules/plans/domain"
	plansout "studyplanner/internal/modules/plans/port/out"

	_ "modernc.org/sqlite"
)

type SQLitePlanProjector struct {
	db *sql.DB
}

func NewSQLitePlanProjector(dbPath string) (plansout.PlanIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLitePlanProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLitePlanProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS study_plans (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  user_id TEXT,
  study_program_id TEXT,
  study_program_name TEXT,
  is_active INTEGER NOT NULL,
  created_date TEXT,
  last_modified TEXT,
  position INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create study_plans table: %w", err)
	}
	return nil
}

func (s *SQLitePlanProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM study_plans`); err != nil {
		return fmt.Errorf("reset study_plans: %w", err)
	}
	return nil
}

func (s *SQLitePlanProjector) UpsertPlan(ctx context.Context, plan domain.Summary) error {
	const stmt = `
INSERT INTO study_plans (id, name, user_id, study_program_id, study_program_name, is_active, created_date, last_modified, position)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, COALESCE((SELECT position FROM study_plans WHERE id = ?), (SELECT COALESCE(MAX(position), -1) + 1 FROM study_plans)))
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  user_id=excluded.user_id,
  study_program_id=excluded.study_program_id,
  study_program_name=excluded.study_program_name,
  is_active=excluded.is_active,
  created_date=excluded.created_date,
  last_modified=excluded.last_modified;
`
	_, err := s.db.ExecContext(ctx, stmt,
		plan.ID,
		plan.Name,
		plan.UserID,
		plan.StudyProgramID,
		plan.StudyProgramName,
		boolToInt(plan.IsActive),
		plan.CreatedDate,
		plan.LastModified,
		plan.ID,
	)
	if err != nil {
		return fmt.Errorf("upsert study plan: %w", err)
	}
	return nil
}

func (s *SQLitePlanProjector) DeletePlan(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM study_plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete study plan: %w", err)
	}
	return nil
}

func (s *SQLitePlanProjector) ListPlans(ctx context.Context) ([]domain.Summary, error) {
	const query = `
SELECT id, name, user_id, study_program_id, study_program_name, is_active, created_date, last_modified
FROM study_plans
ORDER BY position;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list study plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.Summary
	for rows.Next() {
		var plan domain.Summary
		var active int
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.UserID, &plan.StudyProgramID, &plan.StudyProgramName, &active, &plan.CreatedDate, &plan.LastModified); err != nil {
			return nil, fmt.Errorf("scan study plan: %w", err)
		}
		plan.IsActive = active != 0
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate study plans: %w", err)
	}
	return plans, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
