package employee_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/marvik-ai/success-orchestry-api/internal/employee"
	employeeerrors "github.com/marvik-ai/success-orchestry-api/internal/employee/errors"
	"github.com/marvik-ai/success-orchestry-api/internal/employeesalary"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repoDeps struct {
	db        *gorm.DB
	repo      employee.Repository
	service   employee.Service
	financial employeesalary.Service
}

func setupRepoTest(t *testing.T) *repoDeps {
	t.Helper()
	db := testdb.Open(t, &employee.Employee{}, &employee.PersonalInfo{}, &employeesalary.FinancialInfo{})
	repo := employee.NewRepository(db)
	return &repoDeps{
		db:        db,
		repo:      repo,
		service:   employee.NewService(db, repo),
		financial: employeesalary.NewService(db, employeesalary.NewRepository(db)),
	}
}

func createRequest(code, first, last, email string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Code: code,
		PersonalInfoInput: employee.PersonalInfoInput{
			FirstName:      first,
			LastName:       last,
			DocumentNumber: "12345678",
			PersonalEmail:  email,
		},
	}
}

// seedStaff inserts n employees sharing one created_at so ordering falls
// through to the id tie-break.
func seedStaff(t *testing.T, deps *repoDeps, n int, status employee.Status) []uuid.UUID {
	t.Helper()
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		emp := &employee.Employee{
			ID:         uuid.New(),
			Identity:   employee.Identity{Code: fmt.Sprintf("STF-%03d", i), Status: status},
			Timestamps: employee.Timestamps{CreatedAt: at, UpdatedAt: at},
		}
		require.NoError(t, deps.repo.Create(context.Background(), emp))
		require.NoError(t, deps.repo.CreatePersonalInfo(context.Background(), &employee.PersonalInfo{
			ID:         uuid.New(),
			EmployeeID: emp.ID,
			PersonName: employee.PersonName{FirstName: "Staff", LastName: fmt.Sprintf("Member%03d", i)},
			Documents:  employee.Documents{DocumentNumber: "1000"},
			Contact:    employee.Contact{PersonalEmail: fmt.Sprintf("staff%03d@example.com", i)},
		}))
		ids = append(ids, emp.ID)
	}
	return ids
}

func TestEmployeeRepository_CreateIsAtomic(t *testing.T) {
	deps := setupRepoTest(t)
	ctx := context.Background()

	_, err := deps.service.Create(ctx, createRequest("ENG-001", "ana", "gomez", "ana@example.com"))
	require.NoError(t, err)

	_, err = deps.service.Create(ctx, createRequest("ENG-002", "other", "person", "ANA@example.com"))
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeEmailAlreadyExists)

	var n int64
	require.NoError(t, deps.db.Model(&employee.Employee{}).Where("code = ?", "ENG-002").Count(&n).Error)
	assert.Zero(t, n, "identity row must roll back with the failed personal info")
}

func TestEmployeeRepository_DuplicateCode(t *testing.T) {
	deps := setupRepoTest(t)
	ctx := context.Background()

	_, err := deps.service.Create(ctx, createRequest("ENG-001", "ana", "gomez", "ana@example.com"))
	require.NoError(t, err)
	_, err = deps.service.Create(ctx, createRequest("eng-001", "bob", "smith", "bob@example.com"))

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
}

func TestEmployeeRepository_SearchPaging(t *testing.T) {
	deps := setupRepoTest(t)
	ctx := context.Background()
	seedStaff(t, deps, 7, employee.StatusActive)
	seedStaff2 := func() {
		emp := &employee.Employee{ID: uuid.New(), Identity: employee.Identity{Code: "OPS-001", Status: employee.StatusInactive}}
		require.NoError(t, deps.repo.Create(ctx, emp))
		require.NoError(t, deps.repo.CreatePersonalInfo(ctx, &employee.PersonalInfo{
			ID: uuid.New(), EmployeeID: emp.ID,
			PersonName: employee.PersonName{FirstName: "Olga", LastName: "Ops"},
			Documents:  employee.Documents{DocumentNumber: "2000"},
			Contact:    employee.Contact{PersonalEmail: "olga@example.com"},
		}))
	}
	seedStaff2()

	t.Run("total ignores the page window", func(t *testing.T) {
		p, err := employee.SearchParams{Page: 2, Limit: 3}.Normalize()
		require.NoError(t, err)

		items, total, err := deps.repo.Search(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, int64(8), total)
		assert.Len(t, items, 3)
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		p, _ := employee.SearchParams{Page: 3, Limit: 3}.Normalize()

		items, total, err := deps.repo.Search(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, int64(8), total)
		assert.Len(t, items, 2)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		p, _ := employee.SearchParams{Page: 9, Limit: 3}.Normalize()

		items, total, err := deps.repo.Search(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, int64(8), total)
		assert.Empty(t, items)
	})

	t.Run("pages never overlap under equal sort keys", func(t *testing.T) {
		seen := map[uuid.UUID]bool{}
		for page := 1; page <= 3; page++ {
			p, _ := employee.SearchParams{Page: page, Limit: 3, SortBy: "created_at", Order: "asc"}.Normalize()
			items, _, err := deps.repo.Search(ctx, p)
			require.NoError(t, err)
			for _, it := range items {
				assert.False(t, seen[it.ID], "employee %s returned twice", it.ID)
				seen[it.ID] = true
			}
		}
		assert.Len(t, seen, 8)
	})

	t.Run("status filter and count agree", func(t *testing.T) {
		p, _ := employee.SearchParams{Status: "inactive"}.Normalize()

		items, total, err := deps.repo.Search(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "OPS-001", items[0].Code)
		assert.Equal(t, "Olga", items[0].PersonalInfo.FirstName)
	})

	t.Run("free text matches code and email", func(t *testing.T) {
		p, _ := employee.SearchParams{Search: "ops-"}.Normalize()
		_, total, err := deps.repo.Search(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		p, _ = employee.SearchParams{Search: "STAFF00"}.Normalize()
		_, total, err = deps.repo.Search(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
	})

	t.Run("wildcards in the term are literal", func(t *testing.T) {
		p, _ := employee.SearchParams{Name: "%"}.Normalize()

		items, total, err := deps.repo.Search(ctx, p)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, items)
	})

	t.Run("sort by last name", func(t *testing.T) {
		p, _ := employee.SearchParams{SortBy: "last_name", Order: "asc", Limit: 2}.Normalize()

		items, _, err := deps.repo.Search(ctx, p)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Member000", items[0].PersonalInfo.LastName)
		assert.Equal(t, "Member001", items[1].PersonalInfo.LastName)
	})
}

func TestEmployeeService_SearchHidesTerminatedByDefault(t *testing.T) {
	deps := setupRepoTest(t)
	ctx := context.Background()

	kept, err := deps.service.Create(ctx, createRequest("ENG-001", "ana", "gomez", "ana@example.com"))
	require.NoError(t, err)
	leaver, err := deps.service.Create(ctx, createRequest("ENG-002", "bob", "smith", "bob@example.com"))
	require.NoError(t, err)

	_, err = deps.service.Update(ctx, leaver.ID, employee.Patch{"status": "terminated"})
	require.NoError(t, err)

	t.Run("default filters leave terminated out", func(t *testing.T) {
		result, err := deps.service.Search(ctx, employee.SearchParams{})

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Items, 1)
		assert.Equal(t, kept.ID, result.Items[0].ID)
	})

	t.Run("explicit status brings them back", func(t *testing.T) {
		result, err := deps.service.Search(ctx, employee.SearchParams{Status: "terminated"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Items, 1)
		assert.Equal(t, leaver.ID, result.Items[0].ID)
	})

	t.Run("still readable by id", func(t *testing.T) {
		got, err := deps.service.GetByID(ctx, leaver.ID, false)

		require.NoError(t, err)
		assert.Equal(t, employee.StatusTerminated, got.Status)
	})
}

func TestEmployeeRepository_SearchCountryFilter(t *testing.T) {
	deps := setupRepoTest(t)
	ctx := context.Background()
	uruguay, argentina := int64(1), int64(2)

	req := createRequest("ENG-001", "ana", "gomez", "ana@example.com")
	req.CountryID = &uruguay
	_, err := deps.service.Create(ctx, req)
	require.NoError(t, err)
	req = createRequest("ENG-002", "bob", "smith", "bob@example.com")
	req.CountryID = &argentina
	_, err = deps.service.Create(ctx, req)
	require.NoError(t, err)
	_, err = deps.service.Create(ctx, createRequest("ENG-003", "cai", "lee", "cai@example.com"))
	require.NoError(t, err)

	p, err := employee.SearchParams{CountryID: &uruguay}.Normalize()
	require.NoError(t, err)
	items, total, err := deps.repo.Search(ctx, p)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "ENG-001", items[0].Code)
}

// TestEmployeeRepository_SearchTotalMatchesUnpaginated checks every filter
// combination against an in-memory filter over the same fixture.
func TestEmployeeRepository_SearchTotalMatchesUnpaginated(t *testing.T) {
	deps := setupRepoTest(t)
	ctx := context.Background()

	type row struct {
		code, first, last, email string
		status                   employee.Status
	}
	fixture := []row{
		{"ENG-001", "Ana", "Gomez", "ana@example.com", employee.StatusActive},
		{"ENG-002", "Bruno", "Staff", "bruno@corp.io", employee.StatusActive},
		{"OPS-001", "Olga", "Ops", "olga@example.com", employee.StatusInactive},
		{"OPS-002", "Staff", "Member", "staff@example.com", employee.StatusTerminated},
		{"FIN-001", "Ana", "Staffa", "ana.s@corp.io", employee.StatusInactive},
		{"FIN-002", "Pablo", "Ruiz", "pablo@example.com", employee.StatusTerminated},
	}
	for _, r := range fixture {
		emp := &employee.Employee{ID: uuid.New(), Identity: employee.Identity{Code: r.code, Status: r.status}}
		require.NoError(t, deps.repo.Create(ctx, emp))
		require.NoError(t, deps.repo.CreatePersonalInfo(ctx, &employee.PersonalInfo{
			ID: uuid.New(), EmployeeID: emp.ID,
			PersonName: employee.PersonName{FirstName: r.first, LastName: r.last},
			Documents:  employee.Documents{DocumentNumber: "3000"},
			Contact:    employee.Contact{PersonalEmail: r.email},
		}))
	}

	contains := func(haystack, needle string) bool {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}
	expected := func(name, status, search string) int {
		n := 0
		for _, r := range fixture {
			if name != "" && !contains(r.first, name) && !contains(r.last, name) {
				continue
			}
			if status == "" && r.status == employee.StatusTerminated {
				continue
			}
			if status != "" && string(r.status) != status {
				continue
			}
			if search != "" && !contains(r.code, search) && !contains(r.first, search) &&
				!contains(r.last, search) && !contains(r.email, search) {
				continue
			}
			n++
		}
		return n
	}

	for _, name := range []string{"", "ana", "staff", "nobody"} {
		for _, status := range []string{"", "active", "inactive", "terminated"} {
			for _, search := range []string{"", "ops-", "corp.io", "staff"} {
				t.Run(fmt.Sprintf("name=%q status=%q search=%q", name, status, search), func(t *testing.T) {
					p, err := employee.SearchParams{Name: name, Status: status, Search: search, Limit: employee.MaxLimit}.Normalize()
					require.NoError(t, err)

					items, total, err := deps.repo.Search(ctx, p)

					require.NoError(t, err)
					assert.Equal(t, int64(len(items)), total)
					assert.Equal(t, expected(name, status, search), len(items))
				})
			}
		}
	}
}

func TestEmployeeRepository_SoftDelete(t *testing.T) {
	deps := setupRepoTest(t)
	ctx := context.Background()

	created, err := deps.service.Create(ctx, createRequest("ENG-001", "ana", "gomez", "ana@example.com"))
	require.NoError(t, err)
	salary := decimal.NewFromInt(5000)
	cost := decimal.NewFromInt(6000)
	_, err = deps.financial.Append(ctx, created.ID, employeesalary.CreateFinancialInfoRequest{
		SalaryAmount: &salary, CompanyCostAmount: &cost, CurrencyCode: "USD", EffectiveFrom: "2024-01-01",
	})
	require.NoError(t, err)

	require.NoError(t, deps.service.SoftDelete(ctx, created.ID))

	t.Run("hidden from reads and search", func(t *testing.T) {
		_, err := deps.service.GetByID(ctx, created.ID, false)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)

		result, err := deps.service.Search(ctx, employee.SearchParams{})
		require.NoError(t, err)
		assert.Zero(t, result.Total)
	})

	t.Run("row is kept and marked terminated", func(t *testing.T) {
		var emp employee.Employee
		require.NoError(t, deps.db.Unscoped().First(&emp, "id = ?", created.ID).Error)
		assert.Equal(t, employee.StatusTerminated, emp.Status)
		assert.True(t, emp.DeletedAt.Valid)
	})

	t.Run("personal info is gone and financial history stays", func(t *testing.T) {
		var n int64
		require.NoError(t, deps.db.Model(&employee.PersonalInfo{}).Where("employee_id = ?", created.ID).Count(&n).Error)
		assert.Zero(t, n)

		history, err := deps.financial.GetHistory(ctx, created.ID)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		err := deps.service.SoftDelete(ctx, created.ID)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("email is free for a new hire", func(t *testing.T) {
		_, err := deps.service.Create(ctx, createRequest("ENG-002", "ana", "gomez", "ana@example.com"))
		assert.NoError(t, err)
	})
}

func TestEmployeeLifecycle_EndToEnd(t *testing.T) {
	deps := setupRepoTest(t)
	ctx := context.Background()

	created, err := deps.service.Create(ctx, createRequest("eng-001", "  maría josé ", "PÉREZ", "Maria.Perez@Example.com"))
	require.NoError(t, err)
	assert.Equal(t, "ENG-001", created.Code)
	assert.Equal(t, "María José", created.FirstName)
	assert.Equal(t, "Pérez", created.LastName)
	assert.Equal(t, "maria.perez@example.com", created.PersonalEmail)
	assert.Equal(t, employee.StatusActive, created.Status)

	salary := decimal.NewFromInt(5000)
	cost := decimal.NewFromInt(6500)
	_, err = deps.financial.Append(ctx, created.ID, employeesalary.CreateFinancialInfoRequest{
		SalaryAmount: &salary, CompanyCostAmount: &cost, CurrencyCode: "usd", EffectiveFrom: "2023-01-01",
	})
	require.NoError(t, err)

	raise := decimal.NewFromInt(5500)
	_, err = deps.financial.Append(ctx, created.ID, employeesalary.CreateFinancialInfoRequest{
		SalaryAmount: &raise, CompanyCostAmount: &cost, CurrencyCode: "USD", EffectiveFrom: "2024-01-01",
	})
	require.NoError(t, err)

	got, err := deps.service.GetByID(ctx, created.ID, true)
	require.NoError(t, err)
	require.NotNil(t, got.FinancialInfo)
	assert.True(t, got.FinancialInfo.SalaryAmount.Equal(raise))
	assert.Equal(t, "2024-01-01", got.FinancialInfo.EffectiveFrom)

	updated, err := deps.service.Update(ctx, created.ID, employee.Patch{"status": "inactive", "nickname": "majo"})
	require.NoError(t, err)
	assert.Equal(t, employee.StatusInactive, updated.Status)
	assert.Equal(t, "Majo", *updated.Nickname)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	reread, err := deps.service.GetByID(ctx, created.ID, false)
	require.NoError(t, err)
	assert.WithinDuration(t, reread.UpdatedAt, updated.UpdatedAt, time.Millisecond)

	result, err := deps.service.Search(ctx, employee.SearchParams{Name: "PÉREZ", IncludeFinancial: true})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.NotNil(t, result.Items[0].FinancialInfo)

	history, err := deps.financial.GetHistory(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].IsCurrent)
	assert.Equal(t, "2024-01-01", *history[1].EffectiveTo)

	byCode, err := deps.service.Search(ctx, employee.SearchParams{Search: "eng-001"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), byCode.Total)
	require.Len(t, byCode.Items, 1)
	assert.Equal(t, created.ID, byCode.Items[0].ID)

	require.NoError(t, deps.service.SoftDelete(ctx, created.ID))

	byCode, err = deps.service.Search(ctx, employee.SearchParams{Search: "eng-001"})
	require.NoError(t, err)
	assert.Zero(t, byCode.Total)
	assert.Empty(t, byCode.Items)
}
