package apicov

import "regexp"

// registryEntry matches the Tool literals the registry builds its map from:
//
//	m.insert("tool_name", Tool { ... category: Category::SomeVariant, ...
var registryEntry = regexp.MustCompile(`m\.insert\("(\w+)", Tool \{[^}]+category: Category::(\w+),`)

// ScanRegistry extracts the tool name to category mapping from the registry
// source. A name declared twice keeps its last category.
func ScanRegistry(source string) map[string]string {
	tools := make(map[string]string)

	for _, m := range registryEntry.FindAllStringSubmatch(source, -1) {
		tools[m[1]] = m[2]
	}

	return tools
}
