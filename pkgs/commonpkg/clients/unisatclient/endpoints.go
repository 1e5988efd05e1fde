package unisatclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////

// Paging names the wire parameters an endpoint family uses for a Page.
type Paging int

const (
	PAGING_NONE Paging = iota
	PAGING_CURSOR_SIZE
	PAGING_START_LIMIT
)

// Page is the offset/limit pair every paged endpoint takes.
type Page struct {
	Offset int
	Limit  int
}

// query filters
const (
	FILTER_TYPE   = "type"
	FILTER_HEIGHT = "height"
)

// Filters holds the optional history filters; zero values are not sent.
type Filters struct {
	Type   string
	Height int64
}

////////////////////////////////////////////////////////////////////////////////

// Endpoint is one operation of the service: a GET route template with
// {placeholders} filled from PathParams in order.
type Endpoint struct {
	Name        string
	Route       string
	PathParams  []string
	Paging      Paging
	Filters     []string
	Description string
}

// BuildRoute substitutes args into the route template.
func (e Endpoint) BuildRoute(args ...string) (string, error) {
	if len(args) != len(e.PathParams) {
		return "", fmt.Errorf("%w: %s takes %d (%s), got %d",
			ErrPathArguments, e.Name, len(e.PathParams), strings.Join(e.PathParams, ", "), len(args))
	}
	route := e.Route
	for i, name := range e.PathParams {
		route = strings.Replace(route, "{"+name+"}", url.PathEscape(args[i]), 1)
	}
	return route, nil
}

// BuildParams maps page and filters to the wire names of this endpoint. It
// returns nil when the endpoint takes no params.
func (e Endpoint) BuildParams(page Page, filters Filters) map[string]any {
	params := map[string]any{}
	switch e.Paging {
	case PAGING_CURSOR_SIZE:
		params["cursor"] = page.Offset
		params["size"] = page.Limit
	case PAGING_START_LIMIT:
		params["start"] = page.Offset
		params["limit"] = page.Limit
	}
	for _, name := range e.Filters {
		switch name {
		case FILTER_TYPE:
			if filters.Type != "" {
				params[FILTER_TYPE] = filters.Type
			}
		case FILTER_HEIGHT:
			if filters.Height != 0 {
				params[FILTER_HEIGHT] = filters.Height
			}
		}
	}
	if len(params) == 0 {
		return nil
	}
	return params
}

// Usage renders the endpoint as a command line synopsis.
func (e Endpoint) Usage() string {
	parts := []string{e.Name}
	for _, p := range e.PathParams {
		parts = append(parts, "<"+p+">")
	}
	switch e.Paging {
	case PAGING_CURSOR_SIZE, PAGING_START_LIMIT:
		parts = append(parts, "[-offset N -limit N]")
	}
	for _, f := range e.Filters {
		parts = append(parts, "[-"+f+" X]")
	}
	return strings.Join(parts, " ")
}

////////////////////////////////////////////////////////////////////////////////

// Endpoints returns a copy of the catalogue in declaration order.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(catalogue))
	copy(out, catalogue)
	return out
}

// LookupEndpoint finds an endpoint by name.
func LookupEndpoint(name string) (Endpoint, bool) {
	for _, ep := range catalogue {
		if ep.Name == name {
			return ep, true
		}
	}
	return Endpoint{}, false
}

// Invoke calls the endpoint called name. Unknown names and a wrong number of
// path arguments fail before anything is sent.
func (c *Client) Invoke(ctx context.Context, name string, pathArgs []string, page Page, filters Filters) (*Response, error) {
	ep, ok := LookupEndpoint(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, name)
	}
	return c.invoke(ctx, ep, pathArgs, page, filters)
}

func (c *Client) invoke(ctx context.Context, ep Endpoint, pathArgs []string, page Page, filters Filters) (*Response, error) {
	route, err := ep.BuildRoute(pathArgs...)
	if err != nil {
		return nil, err
	}
	return c.Call(ctx, http.MethodGet, route, ep.BuildParams(page, filters))
}
