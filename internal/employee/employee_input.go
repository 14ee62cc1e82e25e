package employee

import (
	"github.com/marvik-ai/success-orchestry-api/internal/validation"

	"github.com/google/uuid"
)

// toEntities validates the request and splits it into the identity and
// personal-info records.
func (r CreateEmployeeRequest) toEntities() (*Employee, *PersonalInfo, error) {
	code, err := validation.EmployeeCode(r.Code)
	if err != nil {
		return nil, nil, err
	}

	status := StatusActive
	if r.Status != "" {
		if status, err = ParseStatus(r.Status); err != nil {
			return nil, nil, err
		}
	}

	name, err := normalizeName(r.FirstName, r.LastName, r.Nickname)
	if err != nil {
		return nil, nil, err
	}
	docs, err := normalizeDocuments(r.DocumentNumber, r.TaxID)
	if err != nil {
		return nil, nil, err
	}
	email, err := validation.Email("personal_email", r.PersonalEmail)
	if err != nil {
		return nil, nil, err
	}

	emp := &Employee{
		ID: uuid.New(),
		Identity: Identity{
			Code:   code,
			Status: status,
			Notes:  validation.OptionalText(r.Notes),
		},
	}
	pi := &PersonalInfo{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		PersonName: name,
		Documents:  docs,
		Contact: Contact{
			PersonalEmail: email,
			Phone:         validation.OptionalText(r.Phone),
			PhotoURL:      validation.OptionalText(r.PhotoURL),
		},
		Location: Location{
			City:      validation.OptionalName(r.City),
			CountryID: r.CountryID,
			Address:   validation.OptionalText(r.Address),
		},
	}
	return emp, pi, nil
}

func normalizeName(first, last string, nickname *string) (PersonName, error) {
	firstName, err := validation.Name("first_name", first)
	if err != nil {
		return PersonName{}, err
	}
	lastName, err := validation.Name("last_name", last)
	if err != nil {
		return PersonName{}, err
	}
	return PersonName{
		FirstName: firstName,
		LastName:  lastName,
		Nickname:  validation.OptionalName(nickname),
	}, nil
}

func normalizeDocuments(number string, taxID *string) (Documents, error) {
	doc, err := validation.Document("document_number", number)
	if err != nil {
		return Documents{}, err
	}
	tax, err := validation.OptionalDocument("tax_id", taxID)
	if err != nil {
		return Documents{}, err
	}
	return Documents{DocumentNumber: doc, TaxID: tax}, nil
}
