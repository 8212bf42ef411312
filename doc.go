// Package apicov compares the FilingExplorer swagger specification against
// the MCP server implementation and reports route coverage.
//
// The pipeline is strictly linear: parse swagger.yaml, scan the server and
// registry sources for tool names, join them through a hand-maintained
// route-to-tool table, and print a sectioned text report. Source scanning is
// regex-based on purpose; the tool produces an approximate coverage signal,
// not ground truth.
package apicov
