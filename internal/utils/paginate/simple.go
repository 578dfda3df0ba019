package paginate

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/sahilKumar1122/portfolio-api/internal/utils"
)

const (
	defaultPerPage = 10
	maxPerPage     = 40
)

type SimplePaginatedActionFn[T any] = func(offset, limit int) ([]T, error)

type SimplePaginatedAction[T any] struct {
	Action SimplePaginatedActionFn[T]
}

func NewSimplePaginatedAction[T any](action SimplePaginatedActionFn[T]) *SimplePaginatedAction[T] {
	return &SimplePaginatedAction[T]{Action: action}
}

// NewSlicePaginatedAction pages over an in-memory slice.
func NewSlicePaginatedAction[T any](items []T) *SimplePaginatedAction[T] {
	return NewSimplePaginatedAction(func(offset, limit int) ([]T, error) {
		if offset < 0 || offset >= len(items) {
			return []T{}, nil
		}
		return items[offset:min(offset+limit, len(items))], nil
	})
}

func (a *SimplePaginatedAction[T]) Exec(r *http.Request) (*PaginatedData[T], error) {
	paginatedData := &PaginatedData[T]{}

	page, perPage := a.validatePaginationParam(r)

	// one extra row tells us if there is a next page
	data, err := a.Action(page*perPage, perPage+1)
	if err != nil {
		return paginatedData, err
	}

	if len(data) == perPage+1 {
		paginatedData.Data = data[:perPage]
		paginatedData.setNext(requestPath(r), r.URL.Query(), page+1, perPage)
	} else {
		paginatedData.Data = data
	}
	paginatedData.setPrev(requestPath(r), r.URL.Query(), page-1, perPage)

	return paginatedData, nil
}

func (a *SimplePaginatedAction[T]) validatePaginationParam(r *http.Request) (page, perPage int) {
	convToInt := func(strNum string, def int) int {
		n, err := strconv.Atoi(strNum)
		if err != nil {
			return def
		}
		return n
	}
	query := r.URL.Query()
	perPage = utils.Clamp(convToInt(query.Get("per_page"), defaultPerPage), 1, maxPerPage)
	// page*perPage+perPage+1 must not overflow
	maxPage := (math.MaxInt - perPage - 1) / perPage
	page = utils.Clamp(convToInt(query.Get("page"), 0), 0, maxPage)
	return page, perPage
}

// RequestURI keeps the path as the client sent it, r.URL.Path may have been
// stripped by http.StripPrefix
func requestPath(r *http.Request) string {
	if r.RequestURI == "" {
		return r.URL.Path
	}
	path, _, _ := strings.Cut(r.RequestURI, "?")
	return path
}
