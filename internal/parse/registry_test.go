package parse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRegistry_DispatchesByExtension(t *testing.T) {
	path := writeFile(t, "doc.txt", "The quick brown fox runs")
	tokens, err := Default().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"quick", "brown", "fox", "run"}, tokens)
}

func TestRegistry_UnknownExtensionIsUnsupported(t *testing.T) {
	path := writeFile(t, "doc.exe", "irrelevant")
	_, err := Default().Parse(path)
	require.Error(t, err)
}

func TestParseCSV_TokenizesEveryField(t *testing.T) {
	path := writeFile(t, "doc.csv", "name,note\nfox,running fast\n")
	tokens, err := ParseCSV(path)
	require.NoError(t, err)
	assert.Contains(t, tokens, "fox")
	assert.Contains(t, tokens, "run")
	assert.Contains(t, tokens, "fast")
}

func TestParseXML_ExtractsCharacterData(t *testing.T) {
	path := writeFile(t, "doc.xml", "<root><title>Running Foxes</title></root>")
	tokens, err := ParseXML(path)
	require.NoError(t, err)
	assert.Contains(t, tokens, "run")
	assert.Contains(t, tokens, "fox")
}

func TestParseHTML_SkipsScriptAndStyle(t *testing.T) {
	path := writeFile(t, "doc.html", `<html><head><style>.x{color:red}</style></head>
<body><script>var x = 1;</script><p>Running foxes</p></body></html>`)
	tokens, err := ParseHTML(path)
	require.NoError(t, err)
	assert.Contains(t, tokens, "run")
	assert.Contains(t, tokens, "fox")
	assert.NotContains(t, tokens, "color")
}
