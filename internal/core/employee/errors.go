package employee

import "errors"

var (
	ErrInvalidID             = errors.New("employee: invalid id")
	ErrInvalidName           = errors.New("employee: invalid name")
	ErrInvalidSalary         = errors.New("employee: invalid salary")
	ErrInvalidStatus         = errors.New("employee: invalid status")
	ErrInvalidEmploymentType = errors.New("employee: invalid employment type")
	ErrInvalidProbationRange = errors.New("employee: invalid probation period")
	ErrInvalidDocumentName   = errors.New("employee: invalid document name")
	ErrInvalidDocumentType   = errors.New("employee: invalid document type")
	ErrEmployeeNotFound      = errors.New("employee: not found")
	ErrDocumentNotFound      = errors.New("employee: document not found")
)
