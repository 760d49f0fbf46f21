package domain

// Category groups articles; an article belongs to exactly one.
type Category struct {
	ID       int64  `json:"id"`
	ParentID *int64 `json:"parent_id,omitempty"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
}

// Tag is attached to articles through article_tag.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Section is attached to articles through the polymorphic sectionables table.
type Section struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Option is a name/id pair used to populate selection widgets.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OptionPage is one page of fetch results.
type OptionPage struct {
	Items    []Option `json:"data"`
	Page     int      `json:"current_page"`
	PerPage  int      `json:"per_page"`
	Total    int      `json:"total"`
	LastPage int      `json:"last_page"`
}
