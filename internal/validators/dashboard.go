package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-flatnav/models"
)

// Field names accepted by [DashboardValidator.Validate]. Snapshot fields
// address the top level of an envelope; config sub-fields use a dotted path.
const (
	FieldBookmarks   = "bookmarks"
	FieldCategories  = "categories"
	FieldConfig      = "config"
	FieldAppName     = "config.appName"
	FieldAppSubtitle = "config.appSubtitle"
	FieldAppFontSize = "config.appFontSize"
	FieldTheme       = "config.theme"

	FieldID         = "id"
	FieldTitle      = "title"
	FieldURL        = "url"
	FieldCategoryID = "categoryId"
	FieldName       = "name"
)

// ConfigFields lists the config sub-fields a restore applies one by one.
var ConfigFields = []string{FieldAppName, FieldAppSubtitle, FieldAppFontSize, FieldTheme}

type DashboardValidator struct{}

func NewDashboardValidator() Validator {
	return &DashboardValidator{}
}

func (v *DashboardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RawSnapshot:
		return v.validateSnapshot(ctx, value, fields...)

	case models.Bookmark:
		return v.validateBookmark(ctx, value, fields...)
	case *models.Bookmark:
		return v.validateBookmark(ctx, *value, fields...)

	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		return v.validateCategory(ctx, *value, fields...)

	case models.ConfigPatch:
		return v.validateConfigPatch(value)

	default:
		return ErrUnsupportedType
	}
}

// validateSnapshot checks the shape of each requested envelope field. An
// absent or null field yields [ErrFieldMissing].
func (v *DashboardValidator) validateSnapshot(ctx context.Context, raw models.RawSnapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = append([]string{FieldBookmarks, FieldCategories}, ConfigFields...)
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldBookmarks:
			err = v.validateBookmarksField(ctx, raw)
		case FieldCategories:
			err = v.validateCategoriesField(ctx, raw)
		case FieldConfig:
			_, err = configObject(raw)
		case FieldAppName, FieldAppSubtitle, FieldAppFontSize, FieldTheme:
			_, err = ConfigString(raw, f)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	return nil
}

// validateBookmarksField only checks that the field is an array. Elements
// are filtered one by one on restore, see [RestorableBookmarks].
func (v *DashboardValidator) validateBookmarksField(_ context.Context, raw models.RawSnapshot) error {
	_, err := arrayField(raw, FieldBookmarks)
	return err
}

func (v *DashboardValidator) validateCategoriesField(_ context.Context, raw models.RawSnapshot) error {
	_, err := arrayField(raw, FieldCategories)
	return err
}

// RestorableBookmarks decodes the bookmarks field of raw. Elements that
// cannot be stored are left out and reported in skipped: non-objects,
// elements without an id and repeated ids. Everything else is kept as
// given, including empty titles or dangling category ids.
func RestorableBookmarks(raw models.RawSnapshot) (kept []models.Bookmark, skipped []error, err error) {
	return restorable(raw, FieldBookmarks, ErrInvalidBookmark, func(b models.Bookmark) string { return b.ID })
}

// RestorableCategories is [RestorableBookmarks] for the categories field.
func RestorableCategories(raw models.RawSnapshot) (kept []models.Category, skipped []error, err error) {
	return restorable(raw, FieldCategories, ErrInvalidCategory, func(c models.Category) string { return c.ID })
}

func restorable[T any](raw models.RawSnapshot, field string, invalid error, idOf func(T) string) ([]T, []error, error) {
	elems, err := arrayField(raw, field)
	if err != nil {
		return nil, nil, err
	}

	kept := make([]T, 0, len(elems))
	var skipped []error
	seen := make(map[string]struct{}, len(elems))
	for i, elem := range elems {
		var value T
		if err = decodeObject(elem, &value); err != nil {
			skipped = append(skipped, fmt.Errorf("%w at index %d: %w", invalid, i, err))
			continue
		}

		id := idOf(value)
		if strings.TrimSpace(id) == "" {
			skipped = append(skipped, fmt.Errorf("%w at index %d: %w", invalid, i, ErrEmptyID))
			continue
		}
		if _, dup := seen[id]; dup {
			skipped = append(skipped, fmt.Errorf("%w at index %d: %w", invalid, i, ErrDuplicateID))
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, value)
	}

	return kept, skipped, nil
}

func (v *DashboardValidator) validateBookmark(_ context.Context, b models.Bookmark, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldURL, FieldCategoryID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(b.ID) == "" {
				return ErrEmptyID
			}
		case FieldTitle:
			if strings.TrimSpace(b.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldURL:
			u, err := url.Parse(b.URL)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return ErrInvalidURL
			}
		case FieldCategoryID:
			if b.CategoryID == "" {
				return ErrEmptyCategoryID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DashboardValidator) validateCategory(_ context.Context, c models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(c.ID) == "" {
				return ErrEmptyID
			}
		case FieldName:
			if strings.TrimSpace(c.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateConfigPatch rejects a patch that sets nothing.
func (v *DashboardValidator) validateConfigPatch(patch models.ConfigPatch) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	return nil
}

// ConfigString returns the string value of a dotted config field such as
// [FieldTheme].
func ConfigString(raw models.RawSnapshot, field string) (string, error) {
	obj, err := configObject(raw)
	if err != nil {
		return "", err
	}

	name := strings.TrimPrefix(field, FieldConfig+".")
	value, ok := obj.Field(name)
	if !ok {
		return "", ErrFieldMissing
	}

	var s string
	if err = json.Unmarshal(value, &s); err != nil {
		return "", ErrNotAString
	}

	return s, nil
}

func configObject(raw models.RawSnapshot) (models.RawSnapshot, error) {
	value, ok := raw.Field(FieldConfig)
	if !ok {
		return nil, ErrFieldMissing
	}

	var obj models.RawSnapshot
	if err := decodeObject(value, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func arrayField(raw models.RawSnapshot, field string) ([]json.RawMessage, error) {
	value, ok := raw.Field(field)
	if !ok {
		return nil, ErrFieldMissing
	}

	if !bytes.HasPrefix(bytes.TrimSpace(value), []byte("[")) {
		return nil, ErrNotAnArray
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(value, &elems); err != nil {
		return nil, ErrNotAnArray
	}
	return elems, nil
}

func decodeObject(value json.RawMessage, dst any) error {
	if !bytes.HasPrefix(bytes.TrimSpace(value), []byte("{")) {
		return ErrNotAnObject
	}
	return json.Unmarshal(value, dst)
}
