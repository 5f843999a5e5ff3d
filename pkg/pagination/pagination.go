package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/JaimeStill/opiniao/pkg/query"
)

// ErrInvalidPage is returned when page or page_size is not an integer or the
// search term exceeds the configured length.
var ErrInvalidPage = errors.New("invalid pagination parameter")

// PageRequest is a page of rows requested by a client, with optional search and sort.
type PageRequest struct {
	Page     int
	PageSize int
	Search   *string
	Sort     []query.SortField
}

// Normalize clamps page and page size into the configured range.
func (r *PageRequest) Normalize(cfg Config) {
	r.Page = max(r.Page, 1)
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	r.PageSize = min(r.PageSize, cfg.MaxPageSize)
}

// Offset is the number of rows skipped before the requested page.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery reads page, page_size, search, and sort from query values.
// Missing values take config defaults; malformed numbers return ErrInvalidPage.
func PageRequestFromQuery(values url.Values, cfg Config) (PageRequest, error) {
	page, err := intParam(values, "page")
	if err != nil {
		return PageRequest{}, err
	}
	pageSize, err := intParam(values, "page_size")
	if err != nil {
		return PageRequest{}, err
	}

	req := PageRequest{
		Page:     page,
		PageSize: pageSize,
		Sort:     query.ParseSortFields(values.Get("sort")),
	}
	if s := strings.TrimSpace(values.Get("search")); s != "" {
		if n := utf8.RuneCountInString(s); n > cfg.MaxSearchLength {
			return PageRequest{}, fmt.Errorf("%w: search is %d characters, limit %d", ErrInvalidPage, n, cfg.MaxSearchLength)
		}
		req.Search = &s
	}

	req.Normalize(cfg)
	return req, nil
}

func intParam(values url.Values, name string) (int, error) {
	v := values.Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPage, name, v)
	}
	return n, nil
}

// PageResult is one page of rows with totals for client navigation.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPageResult builds a PageResult, computing TotalPages (at least 1) and
// replacing a nil slice with an empty one so it encodes as [].
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := 1
	if pageSize > 0 && total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
