package employee

import (
	"strings"

	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	defaultSortKey = "created_at"
)

// sortColumns is the allow-list of sort keys. Anything else falls back to
// defaultSortKey, so user input never reaches ORDER BY.
var sortColumns = map[string]string{
	"code":       "employees.code",
	"status":     "employees.status",
	"first_name": "pi.first_name",
	"last_name":  "pi.last_name",
	"email":      "pi.personal_email",
	"created_at": "employees.created_at",
	"updated_at": "employees.updated_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type SearchParams struct {
	Name             string `form:"name"`
	Status           string `form:"status"`
	CountryID        *int64 `form:"country_id"`
	Search           string `form:"search"`
	Page             int    `form:"page"`
	Limit            int    `form:"limit"`
	SortBy           string `form:"sort_by"`
	Order            string `form:"order"`
	IncludeFinancial bool   `form:"include_financial"`
}

// Normalize clamps paging, resolves sorting and validates the status filter.
func (p SearchParams) Normalize() (SearchParams, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Search = strings.TrimSpace(p.Search)

	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultLimit
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}

	if p.CountryID != nil && *p.CountryID <= 0 {
		return p, apperror.Validation("country_id", apperror.RuleFormat, "country_id must be a positive integer")
	}

	if strings.TrimSpace(p.Status) != "" {
		status, err := ParseStatus(p.Status)
		if err != nil {
			return p, err
		}
		p.Status = string(status)
	} else {
		p.Status = ""
	}

	p.SortBy = strings.ToLower(strings.TrimSpace(p.SortBy))
	if _, ok := sortColumns[p.SortBy]; !ok {
		p.SortBy = defaultSortKey
	}
	p.Order = strings.ToLower(strings.TrimSpace(p.Order))
	if p.Order != "asc" {
		p.Order = "desc"
	}
	return p, nil
}

func (p SearchParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// orderClause sorts by the mapped column and breaks ties on the primary key
// in the same direction so pages are reproducible.
func (p SearchParams) orderClause() string {
	column, ok := sortColumns[p.SortBy]
	if !ok {
		column = sortColumns[defaultSortKey]
	}
	dir := "DESC"
	if p.Order == "asc" {
		dir = "ASC"
	}
	return column + " " + dir + ", employees.id " + dir
}

// searchScope is the one predicate shared by the count and the page query.
// Soft-deleted employees are dropped by gorm's DeletedAt scope; terminated
// ones only appear when the status filter asks for them.
func searchScope(p SearchParams) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Joins("JOIN employee_personal_infos pi ON pi.employee_id = employees.id")

		if p.Name != "" {
			like := containsPattern(p.Name)
			db = db.Where(
				`(LOWER(pi.first_name) LIKE ? ESCAPE '\' OR LOWER(pi.last_name) LIKE ? ESCAPE '\')`,
				like, like,
			)
		}
		if p.Status != "" {
			db = db.Where("employees.status = ?", p.Status)
		} else {
			db = db.Where("employees.status <> ?", StatusTerminated)
		}
		if p.CountryID != nil {
			db = db.Where("pi.country_id = ?", *p.CountryID)
		}
		if p.Search != "" {
			like := containsPattern(p.Search)
			db = db.Where(
				`(LOWER(employees.code) LIKE ? ESCAPE '\' OR LOWER(pi.first_name) LIKE ? ESCAPE '\'`+
					` OR LOWER(pi.last_name) LIKE ? ESCAPE '\' OR LOWER(pi.personal_email) LIKE ? ESCAPE '\')`,
				like, like, like, like,
			)
		}
		return db
	}
}

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
