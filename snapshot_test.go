package pageobject

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/pageobject/schema"
)

const snapshotPage = `<div class="a" id="main"><div class="b">X</div></div>`

func snapshotSchema() *schema.Schema {
	return schema.Single(".a", schema.Children{
		"inner": schema.Single(".b"),
		"items": schema.Multi("li"),
	})
}

func TestSnapshot(t *testing.T) {
	po := newPageObject(t, parse(t, snapshotPage), snapshotSchema())

	s, err := po.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, "Single", s.Mode)
	assert.Equal(t, ".a", s.Pattern)
	assert.True(t, s.Found)
	require.Len(t, s.Matches, 1)

	m := s.Matches[0]
	assert.Equal(t, "div", m.Tag)
	assert.Equal(t, "main", m.ID)
	assert.Equal(t, "X", m.Text)
	require.Len(t, m.Children, 2)

	assert.Equal(t, "inner", m.Children[0].Name)
	assert.True(t, m.Children[0].Found)
	assert.Equal(t, "items", m.Children[1].Name)
	assert.False(t, m.Children[1].Found)
	assert.Empty(t, m.Children[1].Matches)
}

func TestSnapshot_WriteText(t *testing.T) {
	po := newPageObject(t, parse(t, snapshotPage), snapshotSchema())

	s, err := po.Snapshot()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteText(&buf))

	want := strings.Join([]string{
		`Single ".a" (found)`,
		`  <div id=main> "X"`,
		`    inner: Single ".b" (found)`,
		`      <div> "X"`,
		`    items: Multi "li" (0 match(es))`,
		``,
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestSnapshot_NotFound(t *testing.T) {
	po := newPageObject(t, parse(t, `<p></p>`), snapshotSchema())

	s, err := po.Snapshot()
	require.NoError(t, err)
	assert.False(t, s.Found)
	assert.Empty(t, s.Matches)

	var buf bytes.Buffer
	require.NoError(t, s.WriteText(&buf))
	assert.Equal(t, "Single \".a\" (not found)\n", buf.String())
}

func TestSnapshot_MaxDepth(t *testing.T) {
	po := newPageObject(t, parse(t, snapshotPage), snapshotSchema(), WithMaxDepth(0))

	_, err := po.Snapshot()
	assert.EqualError(t, err, "maximum depth (0) exceeded")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
