// Package admin describes CRUD panels and binds their operations to routes.
package admin

import "time"

// Operation names an admin action a panel can enable.
type Operation string

const (
	OpList       Operation = "list"
	OpShow       Operation = "show"
	OpCreate     Operation = "create"
	OpUpdate     Operation = "update"
	OpDelete     Operation = "delete"
	OpBulkDelete Operation = "bulk_delete"
	OpClone      Operation = "clone"
	OpBulkClone  Operation = "bulk_clone"
	OpFetch      Operation = "fetch"
)

// Column is one column of the list view.
type Column struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	Entity    string `json:"entity,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	Orderable bool   `json:"orderable,omitempty"`
}

// Field is one input of the create and update forms.
// Fake fields are not columns; their values are stored inside StoreIn.
type Field struct {
	Name        string      `json:"name"`
	Label       string      `json:"label"`
	Type        string      `json:"type"`
	Placeholder string      `json:"placeholder,omitempty"`
	Hint        string      `json:"hint,omitempty"`
	Default     interface{} `json:"default,omitempty"`
	// Format is the layout the form submits date and datetime values in.
	Format      string      `json:"format,omitempty"`
	DefaultNow  bool        `json:"-"`
	Options     []string    `json:"options,omitempty"`
	Entity      string      `json:"entity,omitempty"`
	Attribute   string      `json:"attribute,omitempty"`
	DataSource  string      `json:"data_source,omitempty"`
	Fake        bool        `json:"fake,omitempty"`
	StoreIn     string      `json:"store_in,omitempty"`
	AllowsNull  bool        `json:"allows_null,omitempty"`
	Required    bool        `json:"required,omitempty"`
	MaxLength   int         `json:"max_length,omitempty"`
	Wrapper     string      `json:"wrapper,omitempty"`
}

// Filter is one filter of the list view. Name matches the list query parameter.
type Filter struct {
	Name    string            `json:"name"`
	Label   string            `json:"label"`
	Type    string            `json:"type"`
	Options map[string]string `json:"options,omitempty"`
}

// Panel is the declarative description of one CRUD entity.
type Panel struct {
	Route            string      `json:"route"`
	EntityName       string      `json:"entity_name"`
	EntityNamePlural string      `json:"entity_name_plural"`
	Columns          []Column    `json:"columns"`
	Fields           []Field     `json:"fields"`
	Filters          []Filter    `json:"filters"`
	Operations       []Operation `json:"operations"`
	// FetchEntities lists the related entities searchable through the fetch operation.
	FetchEntities []string `json:"fetch_entities,omitempty"`
}

// Has reports whether op is enabled on the panel.
func (p Panel) Has(op Operation) bool {
	for _, o := range p.Operations {
		if o == op {
			return true
		}
	}
	return false
}

// At returns a copy of p with the DefaultNow fields set to now (UTC) in their Format.
func (p Panel) At(now time.Time) Panel {
	fields := make([]Field, len(p.Fields))
	copy(fields, p.Fields)
	for i := range fields {
		if fields[i].DefaultNow {
			fields[i].Default = now.UTC().Format(fields[i].Format)
		}
	}
	p.Fields = fields
	return p
}
