package admin

import (
	"time"

	"news-crud/internal/domain"
)

// ArticlePanel returns the list and form configuration of the article panel.
// now provides the form defaults of date and published_at; Register renders
// them again at request time.
func ArticlePanel(routePrefix string, now time.Time) Panel {
	statuses := make([]string, len(domain.ValidStatuses))
	for i, s := range domain.ValidStatuses {
		statuses[i] = string(s)
	}

	p := Panel{
		Route:            "/" + routePrefix + "/article",
		EntityName:       "article",
		EntityNamePlural: "articles",
		Columns: []Column{
			{Name: "title", Label: "Title", Type: "text", Orderable: true},
			{Name: "published_at", Label: "Published time", Type: "datetime", Orderable: true},
			{Name: "expired_at", Label: "Expiration time", Type: "datetime"},
			{Name: "status", Label: "Status", Type: "text"},
			{Name: "featured", Label: "Featured", Type: "check"},
			{Name: "category_id", Label: "Category", Type: "select", Entity: "category", Attribute: "name"},
		},
		Fields: []Field{
			{Name: "title", Label: "Title", Type: "text", Placeholder: "Your title here", Required: true, MaxLength: 255},
			{Name: "slug", Label: "Slug (URL)", Type: "text", Hint: "Will be automatically generated from your title, if left empty.", MaxLength: 255},
			{Name: "meta_title", Label: "Meta Title", Type: "text", Fake: true, StoreIn: "extras", MaxLength: 255},
			{Name: "meta_description", Label: "Meta Description", Type: "text", Fake: true, StoreIn: "extras", MaxLength: 500},
			{Name: "meta_keywords", Label: "Meta Keywords", Type: "textarea", Fake: true, StoreIn: "extras", MaxLength: 255},
			{Name: "date", Label: "Date", Type: "date", Format: domain.FormDateLayout, DefaultNow: true},
			{Name: "published_at", Label: "Published time", Type: "datetime", Format: domain.FormDateTimeLayout, DefaultNow: true},
			{Name: "expired_at", Label: "Expiration time", Type: "datetime_picker", Format: domain.FormDateTimeLayout, AllowsNull: true, Hint: "Leave blank for no expiration time"},
			{Name: "lead", Label: "Lead", Type: "ckeditor", Placeholder: "Make a lead text here"},
			{Name: "content", Label: "Content", Type: "ckeditor", Placeholder: "Your textarea text here"},
			{Name: "image", Label: "Image", Type: "browse"},
			{Name: "thumbnail", Label: "Thumbnail", Type: "browse"},
			{Name: "author_id", Label: "Author", Type: "select2", Entity: "author", Attribute: "name", Required: true, Wrapper: "form-group col-md-6"},
			{Name: "category_id", Label: "Category", Type: "select2_from_ajax", Entity: "category", Attribute: "name", DataSource: "fetch/category", Required: true, Wrapper: "form-group col-md-6"},
			{Name: "tags", Label: "Tags", Type: "select2_from_ajax_multiple", Entity: "tags", Attribute: "name", DataSource: "fetch/tag"},
			{Name: "sections", Label: "Sections", Type: "select2_multiple", Entity: "sections", Attribute: "name"},
			{Name: "status", Label: "Status", Type: "enum", Options: statuses, Required: true},
			{Name: "featured", Label: "Featured item", Type: "checkbox"},
		},
		Filters: []Filter{
			{Name: "status", Label: "Status", Type: "dropdown", Options: map[string]string{
				string(domain.StatusDraft):     "Draft",
				string(domain.StatusPublished): "Published",
			}},
			{Name: "category_id", Label: "Category", Type: "select2_ajax"},
			{Name: "featured", Label: "Featured", Type: "simple"},
			{Name: "published", Label: "Published now", Type: "simple"},
		},
		Operations: []Operation{
			OpList, OpShow, OpCreate, OpUpdate, OpDelete,
			OpBulkDelete, OpClone, OpBulkClone, OpFetch,
		},
		FetchEntities: []string{"category", "tag"},
	}
	return p.At(now)
}
