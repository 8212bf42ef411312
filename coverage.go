package apicov

import "sort"

// RouteResult is a mapped route with its expected tools split into those
// found in the implementation and those still missing.
type RouteResult struct {
	Route       SwaggerRoute
	Implemented []string
	Missing     []string
}

// registryExempt extends the meta-tool set with "search", which dispatches
// from execute_tool and intentionally has no registry entry.
var registryExempt = map[string]bool{
	"list_tool_categories": true,
	"search_tools":         true,
	"execute_tool":         true,
	"search":               true,
}

// Coverage is the full joined analysis, ready to render. The three route
// buckets are a strict partition of Routes, each preserving input order.
type Coverage struct {
	Routes             []SwaggerRoute    // every spec route, input order
	Implemented        []RouteResult     // mapped routes with all tools present
	Missing            []RouteResult     // mapped routes with absent tools
	Unmapped           []SwaggerRoute    // spec routes with no mapping entry
	ImplementedTools   []string          // sorted implemented tool names
	Registry           map[string]string // tool name -> category
	RegistryOnly       []string          // in registry, not implemented
	ImplementationOnly []string          // implemented, not in registry
}

// Analyze classifies every spec route into exactly one bucket and computes
// the registry cross-checks.
func Analyze(routes []SwaggerRoute, implemented map[string]bool, mapping map[string][]string, registry map[string]string) *Coverage {
	cov := &Coverage{
		Routes:           routes,
		ImplementedTools: sortedKeys(implemented),
		Registry:         registry,
	}

	for _, route := range routes {
		expected, ok := mapping[route.Path]
		if !ok {
			cov.Unmapped = append(cov.Unmapped, route)
			continue
		}

		result := RouteResult{Route: route}
		for _, tool := range expected {
			if implemented[tool] {
				result.Implemented = append(result.Implemented, tool)
			} else {
				result.Missing = append(result.Missing, tool)
			}
		}

		if len(result.Missing) > 0 {
			cov.Missing = append(cov.Missing, result)
		} else {
			cov.Implemented = append(cov.Implemented, result)
		}
	}

	for name := range registry {
		if !implemented[name] {
			cov.RegistryOnly = append(cov.RegistryOnly, name)
		}
	}
	sort.Strings(cov.RegistryOnly)

	for name := range implemented {
		if _, inRegistry := registry[name]; !inRegistry && !registryExempt[name] {
			cov.ImplementationOnly = append(cov.ImplementationOnly, name)
		}
	}
	sort.Strings(cov.ImplementationOnly)

	return cov
}

// TotalMapped counts spec routes with a mapping entry.
func (c *Coverage) TotalMapped() int {
	return len(c.Implemented) + len(c.Missing)
}

// CoveragePercent reports the share of mapped routes that are fully
// implemented. ok is false when no route is mapped at all.
func (c *Coverage) CoveragePercent() (percent float64, ok bool) {
	mapped := c.TotalMapped()
	if mapped == 0 {
		return 0, false
	}

	return float64(len(c.Implemented)) / float64(mapped) * 100, true
}
