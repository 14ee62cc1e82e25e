package employee

import (
	"encoding/json"
	"math"
	"slices"

	employeeerrors "github.com/marvik-ai/success-orchestry-api/internal/employee/errors"
	"github.com/marvik-ai/success-orchestry-api/internal/shared/apperror"
	"github.com/marvik-ai/success-orchestry-api/internal/validation"
)

// Patch is a partial update keyed by JSON field name. Keys that are absent
// leave the stored value untouched; an explicit null clears optional fields.
type Patch map[string]any

type fieldOwner int

const (
	ownerIdentity fieldOwner = iota
	ownerPersonal
)

// patchableFields is the field-ownership map: which record each field
// belongs to.
var patchableFields = map[string]fieldOwner{
	"code":            ownerIdentity,
	"status":          ownerIdentity,
	"notes":           ownerIdentity,
	"first_name":      ownerPersonal,
	"last_name":       ownerPersonal,
	"nickname":        ownerPersonal,
	"document_number": ownerPersonal,
	"tax_id":          ownerPersonal,
	"personal_email":  ownerPersonal,
	"phone":           ownerPersonal,
	"photo_url":       ownerPersonal,
	"city":            ownerPersonal,
	"country_id":      ownerPersonal,
	"address":         ownerPersonal,
}

// Fields returns the patch keys in a stable order.
func (p Patch) Fields() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Validate rejects an empty patch and unknown keys without touching any
// record.
func (p Patch) Validate() error {
	if len(p) == 0 {
		return employeeerrors.ErrEmptyPatch
	}
	for _, field := range p.Fields() {
		if _, ok := patchableFields[field]; !ok {
			return apperror.Validation(field, apperror.RuleUnknownField, field+" cannot be updated")
		}
	}
	return nil
}

// touched reports which records a patch writes to.
type touched struct {
	identity bool
	personal bool
}

// Apply validates p and writes each supplied field onto e.
func (p Patch) Apply(e *Employee) (touched, error) {
	var t touched
	if err := p.Validate(); err != nil {
		return t, err
	}
	for _, field := range p.Fields() {
		switch patchableFields[field] {
		case ownerIdentity:
			t.identity = true
		case ownerPersonal:
			if e.PersonalInfo == nil {
				return t, employeeerrors.ErrMissingPersonalInfo
			}
			t.personal = true
		}
		if err := setField(e, field, p[field]); err != nil {
			return t, err
		}
	}
	return t, nil
}

// setField is the only place a patch value reaches an entity.
func setField(e *Employee, field string, value any) error {
	pi := e.PersonalInfo
	var err error
	switch field {
	case "code":
		var raw string
		if raw, err = requiredString(field, value); err == nil {
			e.Code, err = validation.EmployeeCode(raw)
		}
	case "status":
		var raw string
		if raw, err = requiredString(field, value); err == nil {
			e.Status, err = ParseStatus(raw)
		}
	case "notes":
		var raw *string
		if raw, err = optionalString(field, value); err == nil {
			e.Notes = validation.OptionalText(raw)
		}
	case "first_name", "last_name":
		var raw string
		if raw, err = requiredString(field, value); err == nil {
			var name string
			if name, err = validation.Name(field, raw); err == nil {
				if field == "first_name" {
					pi.FirstName = name
				} else {
					pi.LastName = name
				}
			}
		}
	case "nickname":
		var raw *string
		if raw, err = optionalString(field, value); err == nil {
			pi.Nickname = validation.OptionalName(raw)
		}
	case "document_number":
		var raw string
		if raw, err = requiredString(field, value); err == nil {
			pi.DocumentNumber, err = validation.Document(field, raw)
		}
	case "tax_id":
		var raw *string
		if raw, err = optionalString(field, value); err == nil {
			pi.TaxID, err = validation.OptionalDocument(field, raw)
		}
	case "personal_email":
		var raw string
		if raw, err = requiredString(field, value); err == nil {
			pi.PersonalEmail, err = validation.Email(field, raw)
		}
	case "phone", "photo_url", "address":
		var raw *string
		if raw, err = optionalString(field, value); err == nil {
			v := validation.OptionalText(raw)
			switch field {
			case "phone":
				pi.Phone = v
			case "photo_url":
				pi.PhotoURL = v
			default:
				pi.Address = v
			}
		}
	case "city":
		var raw *string
		if raw, err = optionalString(field, value); err == nil {
			pi.City = validation.OptionalName(raw)
		}
	case "country_id":
		pi.CountryID, err = optionalID(field, value)
	default:
		err = apperror.Validation(field, apperror.RuleUnknownField, field+" cannot be updated")
	}
	return err
}

func requiredString(field string, value any) (string, error) {
	if value == nil {
		return "", apperror.RequiredField(field)
	}
	s, ok := value.(string)
	if !ok {
		return "", apperror.Validation(field, apperror.RuleType, field+" must be a string")
	}
	return s, nil
}

func optionalString(field string, value any) (*string, error) {
	if value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, apperror.Validation(field, apperror.RuleType, field+" must be a string")
	}
	return &s, nil
}

func optionalID(field string, value any) (*int64, error) {
	var f float64
	switch v := value.(type) {
	case nil:
		return nil, nil
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, apperror.Validation(field, apperror.RuleType, field+" must be an integer")
		}
		f = float64(n)
	default:
		return nil, apperror.Validation(field, apperror.RuleType, field+" must be an integer")
	}
	if f != math.Trunc(f) || f <= 0 {
		return nil, apperror.Validation(field, apperror.RuleFormat, field+" must be a positive integer")
	}
	id := int64(f)
	return &id, nil
}
