package employee

import (
	employeeerrors "github.com/marvik-ai/success-orchestry-api/internal/employee/errors"
	"github.com/marvik-ai/success-orchestry-api/internal/employeesalary"
)

// Assemble merges an employee with its personal info and, when asked, its
// current financial record. An employee without personal info is corrupt
// data, not a partial result.
func Assemble(e Employee, includeFinancial bool) (EmployeeResponse, error) {
	pi := e.PersonalInfo
	if pi == nil {
		return EmployeeResponse{}, employeeerrors.ErrMissingPersonalInfo
	}

	resp := EmployeeResponse{
		ID:         e.ID.String(),
		Identity:   e.Identity,
		PersonName: pi.PersonName,
		Documents:  pi.Documents,
		Contact:    pi.Contact,
		Location:   pi.Location,
		Timestamps: e.Timestamps,
	}

	if includeFinancial {
		if current := employeesalary.Current(e.FinancialRecords); current != nil {
			fin := employeesalary.ToResponse(*current)
			resp.FinancialInfo = &fin
		}
	}
	return resp, nil
}

func AssembleAll(employees []Employee, includeFinancial bool) ([]EmployeeResponse, error) {
	res := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		view, err := Assemble(e, includeFinancial)
		if err != nil {
			return nil, err
		}
		res = append(res, view)
	}
	return res, nil
}
