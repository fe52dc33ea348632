package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func tag(name string, trail *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trail = append(*trail, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	var trail []string

	rt := New(WithRoutes(Route{
		Path:   "/v1/stores/:id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			trail = append(trail, "handler:"+httprouter.ParamsFromContext(r.Context()).ByName("id"))
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("primeiro", &trail), tag("segundo", &trail)},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores/honey_mk", nil))

	assert.Equal(t, []string{"primeiro", "segundo", "handler:honey_mk"}, trail)
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/v1/stores",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	}))

	notFound := httptest.NewRecorder()
	rt.ServeHTTP(notFound, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))
	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.True(t, strings.Contains(notFound.Body.String(), `"code":"REQ_002"`))

	notAllowed := httptest.NewRecorder()
	rt.ServeHTTP(notAllowed, httptest.NewRequest(http.MethodPatch, "/v1/stores", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, notAllowed.Code)
}
