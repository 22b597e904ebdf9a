package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/pageobject"
	"github.com/tsawler/pageobject/internal/logger"
	"github.com/tsawler/pageobject/schema"
)

const testSchema = `
selector: [Single, .a]
children:
  inner:
    selector: [Single, .b]
  items:
    selector: [Multi, li]
`

const testPage = `<html><body><div class="a" id="main"><div class="b">X</div></div></body></html>`

// execute runs the root command with flags reset to their defaults.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	verbose = false
	resolvePath, resolveFormat, resolveMaxDepth, resolveRequire = "", "text", 32, false
	validateFormat = "yaml"

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFixtures(t *testing.T) (schemaFile, htmlFile string) {
	t.Helper()
	dir := t.TempDir()
	schemaFile = filepath.Join(dir, "page.yaml")
	htmlFile = filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(schemaFile, []byte(testSchema), 0o600))
	require.NoError(t, os.WriteFile(htmlFile, []byte(testPage), 0o600))
	return schemaFile, htmlFile
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := execute(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "pageprobe version test-version-1.0.0")
}

func TestResolveCmd_Text(t *testing.T) {
	schemaFile, htmlFile := writeFixtures(t)

	out, err := execute(t, "resolve", "--schema", schemaFile, "--html", htmlFile)

	require.NoError(t, err)
	assert.Equal(t, `Single ".a" (found)
  <div id=main> "X"
    inner: Single ".b" (found)
      <div> "X"
    items: Multi "li" (0 match(es))
`, out)
}

func TestResolveCmd_JSON(t *testing.T) {
	schemaFile, htmlFile := writeFixtures(t)

	out, err := execute(t, "resolve", "-s", schemaFile, "-d", htmlFile, "--format", "json")
	require.NoError(t, err)

	var snap pageobject.Snapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, ".a", snap.Pattern)
	assert.True(t, snap.Found)
	require.Len(t, snap.Matches, 1)
	require.Len(t, snap.Matches[0].Children, 2)
	assert.Equal(t, "inner", snap.Matches[0].Children[0].Name)
}

func TestResolveCmd_Path(t *testing.T) {
	schemaFile, htmlFile := writeFixtures(t)

	out, err := execute(t, "resolve", "-s", schemaFile, "-d", htmlFile, "--path", "inner")

	require.NoError(t, err)
	assert.Equal(t, "inner: Single \".b\" (found)\n  <div> \"X\"\n", out)
}

func TestResolveCmd_Require(t *testing.T) {
	schemaFile, htmlFile := writeFixtures(t)

	_, err := execute(t, "resolve", "-s", schemaFile, "-d", htmlFile, "--path", "items", "--require")
	assert.ErrorIs(t, err, errNotFound)

	_, err = execute(t, "resolve", "-s", schemaFile, "-d", htmlFile, "--path", "inner", "--require")
	assert.NoError(t, err)
}

func TestResolveCmd_Errors(t *testing.T) {
	schemaFile, htmlFile := writeFixtures(t)

	_, err := execute(t, "resolve", "-s", schemaFile, "-d", htmlFile, "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "resolve", "-s", schemaFile, "-d", htmlFile, "--path", "nope")
	assert.ErrorIs(t, err, pageobject.ErrUnknownChild)

	_, err = execute(t, "resolve", "-s", filepath.Join(t.TempDir(), "missing.yaml"), "-d", htmlFile)
	assert.Error(t, err)

	_, err = execute(t, "resolve", "-s", schemaFile, "-d", filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}

func TestResolveCmd_Verbose(t *testing.T) {
	schemaFile, htmlFile := writeFixtures(t)
	trace := new(bytes.Buffer)
	logger.SetOutput(trace)

	_, err := execute(t, "resolve", "-s", schemaFile, "-d", htmlFile, "--verbose")

	require.NoError(t, err)
	assert.Contains(t, trace.String(), "=== Resolve ===")
	assert.Contains(t, trace.String(), `[DEBUG] Single(".a") in <body>: 1 match(es)`)
}

func TestResolveCmd_WarnsOnEmptyLookup(t *testing.T) {
	schemaFile, htmlFile := writeFixtures(t)
	trace := new(bytes.Buffer)
	logger.SetOutput(trace)

	_, err := execute(t, "resolve", "-s", schemaFile, "-d", htmlFile, "--path", "items", "-v")
	require.NoError(t, err)
	assert.Contains(t, trace.String(), `[WARN] items: Multi("li") matched nothing`)

	trace.Reset()
	logger.SetOutput(trace)
	_, err = execute(t, "resolve", "-s", schemaFile, "-d", htmlFile, "--path", "inner", "-v")
	require.NoError(t, err)
	assert.NotContains(t, trace.String(), "[WARN]")
}

func TestValidateCmd(t *testing.T) {
	schemaFile, _ := writeFixtures(t)

	for _, format := range []string{"yaml", "json", "toml"} {
		t.Run(format, func(t *testing.T) {
			out, err := execute(t, "validate", schemaFile, "--format", format)
			require.NoError(t, err)

			s, err := schema.Decode([]byte(out), schema.ParseFormat(format))
			require.NoError(t, err)
			want := schema.Single(".a", schema.Children{
				"inner": schema.Single(".b"),
				"items": schema.Multi("li"),
			})
			assert.True(t, schema.Equal(want, s), "got %s", s)
		})
	}
}

func TestValidateCmd_Errors(t *testing.T) {
	schemaFile, _ := writeFixtures(t)

	_, err := execute(t, "validate", schemaFile, "--format", "xml")
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("selector: [Single, .a]\nchildren:\n  x:\n    selector: [Sometimes, .x]\n"), 0o600))
	_, err = execute(t, "validate", bad)
	assert.ErrorIs(t, err, schema.ErrMalformedSchema)

	_, err = execute(t, "validate")
	assert.Error(t, err)
}
