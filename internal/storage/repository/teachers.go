package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// teacherColumns never includes password_hash.
const teacherColumns = `id, first_name, last_name, username, email, phone_number, subjects, area,
	curriculum, grade, experience, availability, teaching_mode, cost_per_hour, qualifications,
	special_needs_experience, verified, role, created_at, updated_at`

func scanTeacher(row pgx.Row) (models.Teacher, error) {
	var t models.Teacher
	err := row.Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.UserName, &t.Email, &t.PhoneNumber, &t.Subjects, &t.Area,
		&t.Curriculum, &t.Grade, &t.Experience, &t.Availability, &t.TeachingMode, &t.CostPerHour,
		&t.Qualifications, &t.SpecialNeedsExperience, &t.Verified, &t.Role, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func collectTeachers(rows pgx.Rows) ([]models.Teacher, error) {
	defer rows.Close()
	result := make([]models.Teacher, 0)
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// CreateTeacher stores t and returns its id.
func (s *Storage) CreateTeacher(ctx context.Context, t models.Teacher) (string, error) {
	const op = "storage.CreateTeacher"

	query := `INSERT INTO teachers (first_name, last_name, username, email, password_hash, phone_number,
				  subjects, area, curriculum, grade, experience, availability, teaching_mode,
				  cost_per_hour, qualifications, special_needs_experience, role)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			  RETURNING id`
	var id string
	if err := s.db.QueryRow(ctx, query,
		t.FirstName, t.LastName, t.UserName, t.Email, t.PasswordHash, t.PhoneNumber,
		orEmpty(t.Subjects), orEmpty(t.Area), t.Curriculum, orEmpty(t.Grade), t.Experience,
		orEmpty(t.Availability), t.TeachingMode, t.CostPerHour, orEmpty(t.Qualifications),
		t.SpecialNeedsExperience, models.RoleTeacher,
	).Scan(&id); err != nil {
		return "", wrap(op, err)
	}
	return id, nil
}

// GetTeacher returns the teacher with id.
func (s *Storage) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	const op = "storage.GetTeacher"

	t, err := scanTeacher(s.db.QueryRow(ctx,
		`SELECT `+teacherColumns+` FROM teachers WHERE id = $1`, id))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &t, nil
}

// ListTeachers returns a page of teachers, newest first.
func (s *Storage) ListTeachers(ctx context.Context, limit, offset int) ([]models.Teacher, error) {
	const op = "storage.ListTeachers"

	rows, err := s.db.Query(ctx,
		`SELECT `+teacherColumns+` FROM teachers ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, wrap(op, err)
	}
	result, err := collectTeachers(rows)
	if err != nil {
		return nil, wrap(op, err)
	}
	return result, nil
}

// SearchTeachers returns every teacher matching f.
func (s *Storage) SearchTeachers(ctx context.Context, f models.SearchFilter) ([]models.Teacher, error) {
	const op = "storage.SearchTeachers"

	where, args := filterClause(f)
	rows, err := s.db.Query(ctx,
		`SELECT `+teacherColumns+` FROM teachers`+where+` ORDER BY created_at DESC, id`, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	result, err := collectTeachers(rows)
	if err != nil {
		return nil, wrap(op, err)
	}
	return result, nil
}

// filterClause renders f as a parameterised WHERE clause. Values only ever
// travel as arguments.
func filterClause(f models.SearchFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Subject != nil {
		add("$%d = ANY(subjects)", *f.Subject)
	}
	if f.Cost != nil {
		if f.Cost.Gte != nil {
			add("cost_per_hour >= $%d", *f.Cost.Gte)
		}
		if f.Cost.Lte != nil {
			add("cost_per_hour <= $%d", *f.Cost.Lte)
		}
	}
	if f.Curriculum != nil {
		add("curriculum = $%d", *f.Curriculum)
	}
	if len(f.Area) > 0 {
		add("area && $%d::text[]", f.Area)
	}
	if len(f.Grade) > 0 {
		add("grade && $%d::text[]", f.Grade)
	}
	if f.TeachingMode != nil {
		add("teaching_mode = $%d", *f.TeachingMode)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// UpdateTeacher applies the fields present in u and returns the stored result.
func (s *Storage) UpdateTeacher(ctx context.Context, id string, u models.TeacherUpdate) (*models.Teacher, error) {
	const op = "storage.UpdateTeacher"

	set, args := updateClause(u)
	if len(set) == 0 {
		return nil, fmt.Errorf("%s: %w", op, apperr.NewValidation("body", "no fields to update"))
	}
	args = append(args, id)
	query := `UPDATE teachers SET ` + strings.Join(set, ", ") + `, updated_at = NOW()
			  WHERE id = $` + fmt.Sprint(len(args)) + `
			  RETURNING ` + teacherColumns

	t, err := scanTeacher(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrap(op, err)
	}
	return &t, nil
}

func updateClause(u models.TeacherUpdate) ([]string, []any) {
	var (
		set  []string
		args []any
	)
	add := func(column string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if u.FirstName != nil {
		add("first_name", *u.FirstName)
	}
	if u.LastName != nil {
		add("last_name", *u.LastName)
	}
	if u.PhoneNumber != nil {
		add("phone_number", *u.PhoneNumber)
	}
	if u.Subjects != nil {
		add("subjects", *u.Subjects)
	}
	if u.Area != nil {
		add("area", *u.Area)
	}
	if u.Curriculum != nil {
		add("curriculum", *u.Curriculum)
	}
	if u.Grade != nil {
		add("grade", *u.Grade)
	}
	if u.Experience != nil {
		add("experience", *u.Experience)
	}
	if u.Availability != nil {
		add("availability", orEmpty(*u.Availability))
	}
	if u.TeachingMode != nil {
		add("teaching_mode", *u.TeachingMode)
	}
	if u.CostPerHour != nil {
		add("cost_per_hour", *u.CostPerHour)
	}
	if u.Qualifications != nil {
		add("qualifications", *u.Qualifications)
	}
	if u.SpecialNeedsExperience != nil {
		add("special_needs_experience", *u.SpecialNeedsExperience)
	}
	return set, args
}
