// Package search turns optional query parameters into a typed teacher filter.
package search

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/apperr"
	"github.com/magabrotheeeer/tutor-marketplace/internal/models"
)

// Query parameters understood by BuildFilter.
const (
	ParamSubject      = "subject"
	ParamCostMin      = "costMin"
	ParamCostMax      = "costMax"
	ParamCurriculum   = "curriculum"
	ParamArea         = "area"
	ParamGrade        = "grade"
	ParamTeachingMode = "teachingMode"
)

// BuildFilter maps query parameters to a SearchFilter. Absent or blank
// parameters add no constraint; a non-numeric or non-finite cost bound is a
// validation error.
func BuildFilter(q url.Values) (models.SearchFilter, error) {
	var f models.SearchFilter

	f.Subject = optional(q, ParamSubject)
	f.Curriculum = optional(q, ParamCurriculum)
	f.TeachingMode = optional(q, ParamTeachingMode)
	f.Area = list(q, ParamArea)
	f.Grade = list(q, ParamGrade)

	gte, err := number(q, ParamCostMin)
	if err != nil {
		return models.SearchFilter{}, err
	}
	lte, err := number(q, ParamCostMax)
	if err != nil {
		return models.SearchFilter{}, err
	}
	if gte != nil || lte != nil {
		f.Cost = &models.CostRange{Gte: gte, Lte: lte}
	}

	return f, nil
}

func optional(q url.Values, key string) *string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

// list splits a comma separated parameter, dropping blanks and duplicates.
func list(q url.Values, key string) []string {
	raw := q.Get(key)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}

func number(q url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, apperr.NewValidation(key, "field %s must be a number", key)
	}
	return &v, nil
}
