package apicov

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureAnalyzer(out *bytes.Buffer) *Analyzer {
	analyzer := NewAnalyzer(filepath.Join("testdata", "project"))
	analyzer.Out = out

	return analyzer
}

// TestAnalyzerRun exercises the whole pipeline against the testdata project:
// the fixture server implements everything except update_list, so the three
// methods of /v1/lists/{id_or_name} report as missing.
func TestAnalyzerRun(t *testing.T) {
	var out bytes.Buffer

	missing, err := fixtureAnalyzer(&out).Run()
	require.NoError(t, err)
	assert.Equal(t, 3, missing)

	report := out.String()
	assert.Contains(t, report, "📄 Swagger Routes Found: 8")
	assert.Contains(t, report, "🔧 MCP Tools Implemented (in execute_actual_tool): 7")
	assert.Contains(t, report, "📚 Registry Tools Defined: 7")
	assert.Contains(t, report, "           ✗ Missing: update_list")
	assert.Contains(t, report, "  Coverage (mapped only):   57.1%")
	assert.Contains(t, report, "    - get_etf_holdings (EtfData)")
	assert.Contains(t, report, "    - update_list (Watchlists)")
	assert.Contains(t, report, "    - get_form4_filing\n")
	assert.Contains(t, report, "  [✗] get_form4_filing (n/a)")
	assert.Contains(t, report, "  [✓] get_list (Watchlists)")

	// The unmapped health route shows its spec summary.
	assert.Contains(t, report, "    GET    /v1/health")
	assert.Contains(t, report, "           Service health")
}

// Two runs over unchanged inputs produce byte-identical reports.
func TestAnalyzerRunIdempotent(t *testing.T) {
	var first, second bytes.Buffer

	_, err := fixtureAnalyzer(&first).Run()
	require.NoError(t, err)
	_, err = fixtureAnalyzer(&second).Run()
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestAnalyzerRunFatalErrors(t *testing.T) {
	writeFile := func(t *testing.T, path, content string) {
		t.Helper()
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	tests := []struct {
		name    string
		setup   func(t *testing.T, root string)
		wantErr error
	}{
		{
			name:    "missing swagger spec",
			setup:   func(t *testing.T, root string) {},
			wantErr: ErrSpecLoad,
		},
		{
			name: "missing implementation source",
			setup: func(t *testing.T, root string) {
				writeFile(t, filepath.Join(root, SpecFile), "paths: {}\n")
			},
			wantErr: ErrSourceRead,
		},
		{
			name: "missing registry source",
			setup: func(t *testing.T, root string) {
				writeFile(t, filepath.Join(root, SpecFile), "paths: {}\n")
				writeFile(t, filepath.Join(root, filepath.FromSlash(ImplFile)), "impl S {}\n")
			},
			wantErr: ErrSourceRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			tt.setup(t, root)

			var out bytes.Buffer
			analyzer := NewAnalyzer(root)
			analyzer.Out = &out

			_, err := analyzer.Run()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			// Fatal errors produce no partial report.
			assert.Zero(t, out.Len())
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	t.Run("walks up to the directory holding the spec", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, SpecFile), []byte("paths: {}\n"), 0644))

		nested := filepath.Join(root, "crates", "mcp-server", "src")
		require.NoError(t, os.MkdirAll(nested, 0755))

		found, err := FindProjectRoot(nested)
		require.NoError(t, err)
		assert.Equal(t, root, found)
	})

	t.Run("errors when no spec exists anywhere above", func(t *testing.T) {
		_, err := FindProjectRoot(t.TempDir())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSpecLoad)
	})
}
