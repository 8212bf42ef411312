package apicov

import (
	"regexp"
	"sort"
	"strings"
)

// McpTool is one implemented MCP tool together with the API endpoint and
// HTTP method its handler was observed to call.
type McpTool struct {
	Name     string
	Endpoint string
	Method   string
}

// metaTools are dispatch infrastructure, not real tools. They are excluded
// from the execute_tool block's contribution to the implemented set.
var metaTools = map[string]bool{
	"list_tool_categories": true,
	"search_tools":         true,
	"execute_tool":         true,
}

// Dispatch blocks: a match over the tool-name string inside the named
// function, captured up to the wildcard arm.
var (
	executeToolBlock       = regexp.MustCompile(`(?s)async fn execute_tool.*?match name \{(.*?)\n\s+_ =>`)
	executeActualToolBlock = regexp.MustCompile(`(?s)async fn execute_actual_tool.*?match name \{(.*?)\n\s+_ =>`)

	quotedName     = regexp.MustCompile(`"(\w+)"`)
	endpointAssign = regexp.MustCompile(`let endpoint = format!\("([^"]+)"`)
)

// clientCalls pairs each HTTP method with the api_client call sites that
// reveal it, probed in this order. A direct literal argument doubles as the
// endpoint when no format! template was seen.
var clientCalls = []struct {
	method string
	direct *regexp.Regexp
	byRef  *regexp.Regexp
}{
	{"GET", regexp.MustCompile(`client\.get\("([^"]+)"`), regexp.MustCompile(`client\.get\(&endpoint`)},
	{"POST", regexp.MustCompile(`client\.post\("([^"]+)"`), regexp.MustCompile(`client\.post\(&endpoint`)},
	{"PATCH", regexp.MustCompile(`client\.patch\("([^"]+)"`), regexp.MustCompile(`client\.patch\(&endpoint`)},
	{"DELETE", regexp.MustCompile(`client\.delete\("([^"]+)"`), regexp.MustCompile(`client\.delete\(&endpoint`)},
}

// ScanImplementation extracts the set of implemented tool names from the
// server's dispatch blocks plus, best effort, the endpoint and HTTP method
// each tool's handler targets. The extraction is regex-over-text on purpose;
// tools whose handler cannot be located keep their place in the set but get
// no McpTool entry.
func ScanImplementation(source string) (map[string]bool, []McpTool) {
	names := make(map[string]bool)

	// Special tools, like "search", dispatch straight from execute_tool.
	if m := executeToolBlock.FindStringSubmatch(source); m != nil {
		for _, q := range quotedName.FindAllStringSubmatch(m[1], -1) {
			if !metaTools[q[1]] {
				names[q[1]] = true
			}
		}
	}

	if m := executeActualToolBlock.FindStringSubmatch(source); m != nil {
		for _, q := range quotedName.FindAllStringSubmatch(m[1], -1) {
			names[q[1]] = true
		}
	}

	var tools []McpTool

	for _, name := range sortedKeys(names) {
		body := findToolBody(source, name)
		if body == "" {
			continue
		}

		endpoint := ""
		method := "GET"

		if m := endpointAssign.FindStringSubmatch(body); m != nil {
			endpoint = m[1]
		}

		for _, call := range clientCalls {
			if m := call.direct.FindStringSubmatch(body); m != nil {
				if endpoint == "" {
					endpoint = m[1]
				}
				method = call.method

				break
			}
		}

		// The call site wins over the template hint when both exist.
		for _, call := range clientCalls {
			if call.byRef.MatchString(body) {
				method = call.method

				break
			}
		}

		if endpoint != "" {
			tools = append(tools, McpTool{Name: name, Endpoint: endpoint, Method: method})
		}
	}

	return names, tools
}

// findToolBody locates the handler function for a tool, most specific
// pattern first, falling back to slicing from the function start to the next
// sibling function or the end of the enclosing block. The slice can overrun
// for irregularly formatted source; that is accepted.
func findToolBody(source, name string) string {
	quoted := regexp.QuoteMeta(name)

	patterns := []string{
		`(?s)async fn ` + quoted + `\(&self[^{]*\{(.*?)\n    \}\n`,
		`(?s)async fn ` + quoted + `\(&self[^{]*\{(.*?)\n        Ok\(`,
	}

	for _, pattern := range patterns {
		if m := regexp.MustCompile(pattern).FindStringSubmatch(source); m != nil {
			return m[1]
		}
	}

	start := strings.Index(source, "async fn "+name+"(")
	if start == -1 {
		return ""
	}

	end := strings.Index(source[start+1:], "\n    async fn")
	if end != -1 {
		end += start + 1
	} else if end = strings.Index(source[start:], "\n}\n"); end != -1 {
		end += start
	}

	if end == -1 {
		return ""
	}

	return source[start:end]
}

// sortedKeys returns the keys of set in lexicographic order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
