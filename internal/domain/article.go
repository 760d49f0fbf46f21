package domain

import "time"

// Status is the editorial status of an article.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
)

// Zone-less layouts of the admin form date inputs. Values in these layouts are read as UTC.
const (
	FormDateLayout     = time.DateOnly
	FormDateTimeLayout = time.DateTime
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []Status{StatusDraft, StatusPublished}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status Status) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// SectionableType is the discriminator stored in sectionables for articles.
const SectionableType = "article"

// Article represents a news article entity in the system.
type Article struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Lead        string     `json:"lead"`
	Resume      string     `json:"resume"`
	Content     string     `json:"content"`
	Image       *string    `json:"image,omitempty"`
	Thumbnail   *string    `json:"thumbnail,omitempty"`
	Status      Status     `json:"status"`
	AuthorID    int64      `json:"author_id"`
	CategoryID  int64      `json:"category_id"`
	Featured    bool       `json:"featured"`
	Date        time.Time  `json:"date"`
	PublishedAt time.Time  `json:"published_at"`
	ExpiredAt   *time.Time `json:"expired_at,omitempty"`
	Extras      Extras     `json:"extras"`
	Stats       Stats      `json:"stats"`
	TagIDs      []int64    `json:"tag_ids"`
	SectionIDs  []int64    `json:"section_ids"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Extras holds the SEO fields kept in the extras JSON column.
type Extras struct {
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	MetaKeywords    string `json:"meta_keywords,omitempty"`
}

// Stats holds the counters maintained outside the admin forms.
type Stats struct {
	ViewsCount     int  `json:"views_count"`
	CommentsCount  int  `json:"comments_count"`
	FacebookShares int  `json:"facebook_shares"`
	TwitterShares  int  `json:"twitter_shares"`
	LinkedinShares int  `json:"linkedin_shares"`
	Score          int  `json:"score"`
	IsFirstPublish bool `json:"is_first_publish"`
}

// SlugOrTitle returns the slug when set, otherwise the title.
// It is the source used when a slug has to be generated.
func (a *Article) SlugOrTitle() string {
	if a.Slug != "" {
		return a.Slug
	}
	return a.Title
}

// IsPublishedAt reports whether the article is publicly visible at now.
// published_at is inclusive, expired_at is exclusive and a nil expired_at never expires.
// The SQL rendition lives in repository.publishedPredicate and must stay in step.
func (a *Article) IsPublishedAt(now time.Time) bool {
	if a.Status != StatusPublished {
		return false
	}
	if a.PublishedAt.After(now) {
		return false
	}
	return a.ExpiredAt == nil || a.ExpiredAt.After(now)
}

// ArticleInput carries the values submitted by the admin create/update forms.
type ArticleInput struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Lead            string     `json:"lead"`
	Resume          string     `json:"resume"`
	Content         string     `json:"content"`
	Image           *string    `json:"image"`
	Thumbnail       *string    `json:"thumbnail"`
	Status          Status     `json:"status"`
	AuthorID        int64      `json:"author_id"`
	CategoryID      int64      `json:"category_id"`
	Featured        bool       `json:"featured"`
	Date            *time.Time `json:"date"`
	PublishedAt     *time.Time `json:"published_at"`
	ExpiredAt       *time.Time `json:"expired_at"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	MetaKeywords    string     `json:"meta_keywords"`
	TagIDs          []int64    `json:"tags"`
	SectionIDs      []int64    `json:"sections"`
}

// Apply copies the submitted values onto a, filling form defaults
// (date and published_at default to now).
func (in *ArticleInput) Apply(a *Article, now time.Time) {
	a.Title = in.Title
	a.Slug = in.Slug
	a.Lead = in.Lead
	a.Resume = in.Resume
	a.Content = in.Content
	a.Image = in.Image
	a.Thumbnail = in.Thumbnail
	a.Status = in.Status
	a.AuthorID = in.AuthorID
	a.CategoryID = in.CategoryID
	a.Featured = in.Featured
	a.ExpiredAt = in.ExpiredAt
	a.Extras = Extras{
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		MetaKeywords:    in.MetaKeywords,
	}
	a.TagIDs = uniqueIDs(in.TagIDs)
	a.SectionIDs = uniqueIDs(in.SectionIDs)

	if in.Date != nil {
		a.Date = *in.Date
	} else {
		y, m, d := now.Date()
		a.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	if in.PublishedAt != nil {
		a.PublishedAt = *in.PublishedAt
	} else {
		a.PublishedAt = now
	}
}

// ListQuery holds the admin list parameters.
type ListQuery struct {
	Page       int
	PerPage    int
	Search     string
	Status     Status
	CategoryID int64
	Featured   *bool
	OrderDesc  bool

	// Published keeps only articles visible at PublishedAt.
	Published   bool
	PublishedAt time.Time
}

// Offset returns the row offset for the page.
func (q ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PerPage
}

// ArticlePage is one page of a list query.
type ArticlePage struct {
	Items   []Article `json:"data"`
	Page    int       `json:"current_page"`
	PerPage int       `json:"per_page"`
	Total   int       `json:"total"`
}

func uniqueIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
