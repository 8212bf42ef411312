package apicov

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fatal input error categories. Everything else the tool encounters (missing
// routes, unmapped paths, extraction misses) is report content, not an error.
var (
	// ErrSpecLoad marks a swagger spec that is missing, unreadable, or not
	// the expected mapping-of-paths-to-methods shape.
	ErrSpecLoad = errors.New("swagger spec load failed")

	// ErrSourceRead marks an implementation or registry source file that is
	// missing or unreadable.
	ErrSourceRead = errors.New("source file read failed")
)

// versionPrefix is stripped from spec paths for display convenience.
const versionPrefix = "/v1/"

// recognizedMethods are the HTTP method keys extracted from swagger path
// items. Other keys (parameters, options, head, ...) are ignored.
var recognizedMethods = map[string]bool{
	"get":    true,
	"post":   true,
	"put":    true,
	"patch":  true,
	"delete": true,
}

// SwaggerRoute is one (path, HTTP method) pair declared in swagger.yaml.
type SwaggerRoute struct {
	Path    string // Spec path, including {placeholder} parameters
	Method  string // Upper-cased HTTP method
	Summary string // Method summary, empty if not declared
	Tag     string // First declared tag, "Unknown" if none
}

// NormalizedPath returns the route path with the version prefix stripped:
// /v1/companies/{cik}/calendar becomes companies/{cik}/calendar.
func (r SwaggerRoute) NormalizedPath() string {
	return strings.TrimPrefix(r.Path, versionPrefix)
}

// methodDetails is the subset of a swagger operation object the report uses.
type methodDetails struct {
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
}

// ParseSwaggerFile reads and parses a swagger spec file into routes.
func ParseSwaggerFile(path string) ([]SwaggerRoute, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpecLoad, err)
	}

	return parseSwagger(content)
}

// parseSwagger extracts every recognized (path, method) pair from the spec.
// Paths and methods are walked in document order, via yaml.Node rather than a
// plain map, so repeated runs render identical reports.
func parseSwagger(content []byte) ([]SwaggerRoute, error) {
	var doc struct {
		Paths yaml.Node `yaml:"paths"`
	}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpecLoad, err)
	}

	// A spec without a paths section has no routes.
	if doc.Paths.Kind == 0 || doc.Paths.Tag == "!!null" {
		return nil, nil
	}

	if doc.Paths.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: paths is not a mapping", ErrSpecLoad)
	}

	var routes []SwaggerRoute

	for i := 0; i+1 < len(doc.Paths.Content); i += 2 {
		path := doc.Paths.Content[i].Value
		item := doc.Paths.Content[i+1]

		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: path %s is not a mapping of methods", ErrSpecLoad, path)
		}

		for j := 0; j+1 < len(item.Content); j += 2 {
			method := item.Content[j].Value
			if !recognizedMethods[method] {
				continue
			}

			var details methodDetails
			if err := item.Content[j+1].Decode(&details); err != nil {
				return nil, fmt.Errorf("%w: %s %s: %v", ErrSpecLoad, method, path, err)
			}

			tag := "Unknown"
			if len(details.Tags) > 0 {
				tag = details.Tags[0]
			}

			routes = append(routes, SwaggerRoute{
				Path:    path,
				Method:  strings.ToUpper(method),
				Summary: details.Summary,
				Tag:     tag,
			})
		}
	}

	return routes, nil
}
