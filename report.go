package apicov

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

var (
	doubleRule = strings.Repeat("=", 80)
	singleRule = strings.Repeat("-", 80)
)

// WriteReport renders the coverage analysis as a sectioned text report.
// Rendering is fully deterministic: the same analysis always produces the
// same bytes.
func (c *Coverage) WriteReport(w io.Writer) error {
	_, err := io.WriteString(w, c.Render())

	return err
}

// Render builds the report. Section order: implemented routes, missing or
// incomplete routes, unmapped routes, the numeric summary, the two registry
// cross-checks, and the full implemented tool listing.
func (c *Coverage) Render() string {
	var b strings.Builder

	c.writeHeader(&b)
	c.writeImplemented(&b)
	c.writeMissing(&b)
	c.writeUnmapped(&b)
	c.writeSummary(&b)
	c.writeRegistryChecks(&b)
	c.writeToolListing(&b)

	return b.String()
}

func (c *Coverage) writeHeader(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n", doubleRule)
	fmt.Fprintf(b, "FilingExplorer API Coverage Report\n")
	fmt.Fprintf(b, "%s\n\n", doubleRule)

	fmt.Fprintf(b, "📄 Swagger Routes Found: %d\n", len(c.Routes))
	fmt.Fprintf(b, "🔧 MCP Tools Implemented (in execute_actual_tool): %d\n", len(c.ImplementedTools))
	fmt.Fprintf(b, "📚 Registry Tools Defined: %d\n\n", len(c.Registry))
}

func (c *Coverage) writeImplemented(b *strings.Builder) {
	fmt.Fprintf(b, "✅ IMPLEMENTED ROUTES\n%s\n", singleRule)

	tags, groups := groupByTag(c.Implemented, func(r RouteResult) string { return r.Route.Tag })
	for _, tag := range tags {
		fmt.Fprintf(b, "\n  %s:\n", tag)
		for _, r := range groups[tag] {
			fmt.Fprintf(b, "    %-6s %s\n", r.Route.Method, r.Route.Path)
			fmt.Fprintf(b, "           → %s\n", strings.Join(r.Implemented, ", "))
		}
	}
}

func (c *Coverage) writeMissing(b *strings.Builder) {
	if len(c.Missing) == 0 {
		return
	}

	fmt.Fprintf(b, "\n\n❌ MISSING OR INCOMPLETE ROUTES\n%s\n", singleRule)

	tags, groups := groupByTag(c.Missing, func(r RouteResult) string { return r.Route.Tag })
	for _, tag := range tags {
		fmt.Fprintf(b, "\n  %s:\n", tag)
		for _, r := range groups[tag] {
			fmt.Fprintf(b, "    %-6s %s\n", r.Route.Method, r.Route.Path)
			if len(r.Implemented) > 0 {
				fmt.Fprintf(b, "           ✓ Implemented: %s\n", strings.Join(r.Implemented, ", "))
			}
			fmt.Fprintf(b, "           ✗ Missing: %s\n", strings.Join(r.Missing, ", "))
		}
	}
}

func (c *Coverage) writeUnmapped(b *strings.Builder) {
	if len(c.Unmapped) == 0 {
		return
	}

	fmt.Fprintf(b, "\n\n⚠️  UNMAPPED ROUTES (in swagger but no expected MCP tool defined)\n%s\n", singleRule)

	tags, groups := groupByTag(c.Unmapped, func(r SwaggerRoute) string { return r.Tag })
	for _, tag := range tags {
		fmt.Fprintf(b, "\n  %s:\n", tag)
		for _, route := range groups[tag] {
			fmt.Fprintf(b, "    %-6s %s\n", route.Method, route.Path)
			fmt.Fprintf(b, "           %s\n", route.Summary)
		}
	}
}

func (c *Coverage) writeSummary(b *strings.Builder) {
	fmt.Fprintf(b, "\n\n%s\nSUMMARY\n%s\n", doubleRule, doubleRule)

	fmt.Fprintf(b, "  Total Swagger Routes:     %d\n", len(c.Routes))
	fmt.Fprintf(b, "  Mapped to MCP Tools:      %d\n", c.TotalMapped())
	fmt.Fprintf(b, "  Fully Implemented:        %d\n", len(c.Implemented))
	fmt.Fprintf(b, "  Missing Implementation:   %d\n", len(c.Missing))
	fmt.Fprintf(b, "  Unmapped (no tool):       %d\n", len(c.Unmapped))

	// The coverage line is omitted entirely when nothing is mapped.
	if percent, ok := c.CoveragePercent(); ok {
		fmt.Fprintf(b, "\n  Coverage (mapped only):   %.1f%%\n", percent)
	}

	b.WriteString("\n")
}

func (c *Coverage) writeRegistryChecks(b *strings.Builder) {
	if len(c.RegistryOnly) > 0 {
		fmt.Fprintf(b, "⚠️  Tools in registry.rs but NOT in execute_actual_tool:\n")
		for _, tool := range c.RegistryOnly {
			fmt.Fprintf(b, "    - %s (%s)\n", tool, c.Registry[tool])
		}
		b.WriteString("\n")
	}

	if len(c.ImplementationOnly) > 0 {
		fmt.Fprintf(b, "⚠️  Tools in execute_actual_tool but NOT in registry.rs:\n")
		for _, tool := range c.ImplementationOnly {
			fmt.Fprintf(b, "    - %s\n", tool)
		}
		b.WriteString("\n")
	}
}

func (c *Coverage) writeToolListing(b *strings.Builder) {
	fmt.Fprintf(b, "\n\n%s\nIMPLEMENTED TOOLS IN execute_actual_tool\n%s\n", doubleRule, doubleRule)

	for _, tool := range c.ImplementedTools {
		mark := "✗"
		category := "n/a"
		if cat, ok := c.Registry[tool]; ok {
			mark = "✓"
			category = cat
		}
		fmt.Fprintf(b, "  [%s] %s (%s)\n", mark, tool, category)
	}
}

// groupByTag buckets items by tag, keeping input order inside each bucket,
// and returns the tag names sorted for stable section ordering.
func groupByTag[T any](items []T, tagOf func(T) string) ([]string, map[string][]T) {
	groups := make(map[string][]T)
	for _, item := range items {
		tag := tagOf(item)
		groups[tag] = append(groups[tag], item)
	}

	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags, groups
}
