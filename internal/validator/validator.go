package validator

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"news-crud/internal/domain"
	"news-crud/internal/slug"
)

const maxBulkEntries = 500

var (
	validStatus = []interface{}{domain.StatusDraft, domain.StatusPublished}
	mediaFields = []interface{}{"image", "thumbnail"}
	imageExts   = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
)

// Validator provides validation methods for admin submissions.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticleInput validates a create/update form submission.
// defaultPublishedAt stands in for published_at when the form leaves it empty.
func (v *Validator) ValidateArticleInput(in *domain.ArticleInput, defaultPublishedAt time.Time) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(1, 255).Error("title_too_long"),
		),
		validation.Field(&in.Slug,
			validation.RuneLength(0, 255).Error("slug_too_long"),
			validation.By(slugFormat),
		),
		validation.Field(&in.Status,
			validation.Required.Error("status_required"),
			validation.In(validStatus...).Error("invalid_status"),
		),
		validation.Field(&in.AuthorID,
			validation.Required.Error("author_id_required"),
			validation.Min(int64(1)).Error("invalid_author_id"),
		),
		validation.Field(&in.CategoryID,
			validation.Required.Error("category_id_required"),
			validation.Min(int64(1)).Error("invalid_category_id"),
		),
		validation.Field(&in.Image,
			validation.RuneLength(0, 255).Error("image_too_long"),
			is.RequestURI.Error("invalid_image_url"),
		),
		validation.Field(&in.Thumbnail,
			validation.RuneLength(0, 255).Error("thumbnail_too_long"),
			is.RequestURI.Error("invalid_thumbnail_url"),
		),
		validation.Field(&in.MetaTitle,
			validation.RuneLength(0, 255).Error("meta_title_too_long"),
		),
		validation.Field(&in.MetaDescription,
			validation.RuneLength(0, 500).Error("meta_description_too_long"),
		),
		validation.Field(&in.MetaKeywords,
			validation.RuneLength(0, 255).Error("meta_keywords_too_long"),
		),
		validation.Field(&in.TagIDs,
			validation.Each(validation.Min(int64(1)).Error("invalid_tag_id")),
		),
		validation.Field(&in.SectionIDs,
			validation.Each(validation.Min(int64(1)).Error("invalid_section_id")),
		),
		validation.Field(&in.ExpiredAt,
			validation.By(expiresAfter(in.PublishedAt, defaultPublishedAt)),
		),
	)
}

func slugFormat(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !slug.IsValid(s) {
		return validation.NewError("invalid_slug_format", "invalid_slug_format")
	}
	return nil
}

// expiresAfter rejects an expiry that is not strictly later than the publication instant.
func expiresAfter(publishedAt *time.Time, fallback time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		expiredAt, ok := value.(*time.Time)
		if !ok || expiredAt == nil {
			return nil
		}
		from := fallback
		if publishedAt != nil {
			from = *publishedAt
		}
		if !expiredAt.After(from) {
			return validation.NewError("expired_at_not_after_published_at", "expired_at_not_after_published_at")
		}
		return nil
	}
}

var (
	dateLayouts     = []string{domain.FormDateLayout, time.RFC3339Nano}
	dateTimeLayouts = []string{
		domain.FormDateTimeLayout,
		"2006-01-02 15:04",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		time.RFC3339Nano,
	}
)

// ParseFormDates sets the date fields of in from the raw form values.
// Empty values leave the field nil. Unparseable values are reported as
// invalid_date field errors.
func ParseFormDates(in *domain.ArticleInput, date, publishedAt, expiredAt *string) error {
	errs := validation.Errors{}
	var err error

	if in.Date, err = parseFormTime(date, dateLayouts); err != nil {
		errs["date"] = err
	} else if in.Date != nil {
		y, m, d := in.Date.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		in.Date = &day
	}
	if in.PublishedAt, err = parseFormTime(publishedAt, dateTimeLayouts); err != nil {
		errs["published_at"] = err
	}
	if in.ExpiredAt, err = parseFormTime(expiredAt, dateTimeLayouts); err != nil {
		errs["expired_at"] = err
	}
	return errs.Filter()
}

func parseFormTime(raw *string, layouts []string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	value := strings.TrimSpace(*raw)
	if value == "" {
		return nil, nil
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, validation.NewError("invalid_date", "invalid_date")
}

// ValidateEntries validates the id list of a bulk operation.
func (v *Validator) ValidateEntries(ids []int64) error {
	return validation.Errors{
		"entries": validation.Validate(ids,
			validation.Required.Error("entries_required"),
			validation.Length(1, maxBulkEntries).Error("too_many_entries"),
			validation.Each(validation.Min(int64(1)).Error("invalid_entry_id")),
		),
	}.Filter()
}

// ValidateUpload validates a media upload request for one of the browse fields.
func (v *Validator) ValidateUpload(field, filename string) error {
	return validation.Errors{
		"field": validation.Validate(field,
			validation.Required.Error("field_required"),
			validation.In(mediaFields...).Error("invalid_field"),
		),
		"filename": validation.Validate(filename,
			validation.Required.Error("filename_required"),
			validation.By(func(value interface{}) error {
				name, _ := value.(string)
				if !imageExts[strings.ToLower(filepath.Ext(name))] {
					return validation.NewError("unsupported_file_type", "unsupported_file_type")
				}
				return nil
			}),
		),
	}.Filter()
}

// ConvertValidationErrors flattens ozzo validation errors into a field to message map.
// It returns nil when err is not a validation error.
func ConvertValidationErrors(err error) map[string]string {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return nil
	}

	out := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		if fieldErr == nil {
			continue
		}
		out[field] = fieldErr.Error()
	}
	return out
}

// IsValidationError reports whether err carries field validation failures.
func IsValidationError(err error) bool {
	var ve validation.Errors
	return errors.As(err, &ve)
}
