package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrFieldMissing     = errors.New("field is missing")
	ErrNotAnArray       = errors.New("field is not an array")
	ErrNotAnObject      = errors.New("field is not an object")
	ErrNotAString       = errors.New("field is not a string")
	ErrInvalidBookmark  = errors.New("invalid bookmark")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrEmptyID          = errors.New("id is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidURL       = errors.New("invalid url")
	ErrEmptyCategoryID  = errors.New("category id is required")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
