package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Capabilities a CRUD handler may implement. Register binds each one the
// panel enables to its route.
type (
	Lister interface {
		List(c *gin.Context)
	}
	Shower interface {
		Show(c *gin.Context)
	}
	Creator interface {
		Create(c *gin.Context)
	}
	Updater interface {
		Update(c *gin.Context)
	}
	Deleter interface {
		Delete(c *gin.Context)
	}
	BulkDeleter interface {
		BulkDelete(c *gin.Context)
	}
	Cloner interface {
		Clone(c *gin.Context)
	}
	BulkCloner interface {
		BulkClone(c *gin.Context)
	}
	// Fetcher returns the search handler for a related entity, or nil when unsupported.
	Fetcher interface {
		Fetch(entity string) gin.HandlerFunc
	}
)

// Route is one registered endpoint, reported for logging and tests.
type Route struct {
	Operation Operation
	Method    string
	Path      string
}

// Register mounts the panel metadata and every enabled operation h supports
// on group. Operations enabled on the panel but not implemented by h are skipped.
func Register(group gin.IRoutes, p Panel, h interface{}) []Route {
	var routes []Route
	add := func(op Operation, method, path string, fn gin.HandlerFunc) {
		group.Handle(method, path, fn)
		routes = append(routes, Route{Operation: op, Method: method, Path: path})
	}

	group.GET("/meta", func(c *gin.Context) {
		c.JSON(http.StatusOK, p.At(time.Now()))
	})

	if v, ok := h.(Lister); ok && p.Has(OpList) {
		add(OpList, http.MethodGet, "", v.List)
	}
	if v, ok := h.(Creator); ok && p.Has(OpCreate) {
		add(OpCreate, http.MethodPost, "", v.Create)
	}
	if v, ok := h.(BulkDeleter); ok && p.Has(OpBulkDelete) {
		add(OpBulkDelete, http.MethodPost, "/bulk-delete", v.BulkDelete)
	}
	if v, ok := h.(BulkCloner); ok && p.Has(OpBulkClone) {
		add(OpBulkClone, http.MethodPost, "/bulk-clone", v.BulkClone)
	}
	if v, ok := h.(Fetcher); ok && p.Has(OpFetch) {
		for _, entity := range p.FetchEntities {
			if fn := v.Fetch(entity); fn != nil {
				add(OpFetch, http.MethodPost, "/fetch/"+entity, fn)
			}
		}
	}
	if v, ok := h.(Shower); ok && p.Has(OpShow) {
		add(OpShow, http.MethodGet, "/:id", v.Show)
	}
	if v, ok := h.(Updater); ok && p.Has(OpUpdate) {
		add(OpUpdate, http.MethodPut, "/:id", v.Update)
	}
	if v, ok := h.(Deleter); ok && p.Has(OpDelete) {
		add(OpDelete, http.MethodDelete, "/:id", v.Delete)
	}
	if v, ok := h.(Cloner); ok && p.Has(OpClone) {
		add(OpClone, http.MethodPost, "/:id/clone", v.Clone)
	}

	return routes
}
