package api

import (
	"fmt"
	"io"
	"strings"

	"github.com/gorilla/mux"
)

// Route describes one registered method+path pair
type Route struct {
	Methods []string
	Path    string
}

// Routes walks the router and returns every route with a path template
func Routes(r *mux.Router) ([]Route, error) {
	var routes []Route
	err := r.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return nil // Skip routes without templates
		}

		methods, err := route.GetMethods()
		if err != nil {
			methods = nil
		}

		routes = append(routes, Route{Methods: methods, Path: pathTemplate})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk routes: %w", err)
	}
	return routes, nil
}

// PrintRoutes writes a METHOD/PATH table of the registered routes to w
func PrintRoutes(w io.Writer, r *mux.Router) error {
	routes, err := Routes(r)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Registered Routes ===")
	fmt.Fprintln(w, "METHOD\tPATH")
	fmt.Fprintln(w, "-------------------------------")
	for _, route := range routes {
		// If no methods are specified, assume all methods
		methodStr := "ANY"
		if len(route.Methods) > 0 {
			methodStr = strings.Join(route.Methods, ",")
		}
		fmt.Fprintf(w, "%s\t%s\n", methodStr, route.Path)
	}
	fmt.Fprintln(w, "==============================")
	return nil
}
