package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		schema   *Schema
		wantPath string
	}{
		{"nil schema", nil, "root"},
		{"zero value", &Schema{}, "root"},
		{"nil inherited", Single((*Schema)(nil)), "root"},
		{"nil children schema", Single(".a", (*Schema)(nil)), "root"},
		{"nil child", Single(".a", Children{"x": nil}), "root.x"},
		{"empty child name", Single(".a", Children{"": Single(".b")}), "root"},
		{
			"deep malformed child",
			Single(".a", Children{"x": Multi(".x", Children{"y": nil})}),
			"root.x.y",
		},
		{
			"malformed inherited schema",
			Multi(Single(".a", Children{"x": nil})),
			"root.x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.schema)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedSchema))

			var me *MalformedError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.wantPath, me.Path)

			assert.False(t, IsSchema(tt.schema))
		})
	}
}

func TestValidate_WellFormed(t *testing.T) {
	s := Single(".a", Children{
		"items": Multi("li", Children{"link": Single("a")}),
		"title": Single("h1"),
	})

	assert.NoError(t, Validate(s))
	assert.True(t, IsSchema(s))
}

func TestValidate_PatternsAreOpaque(t *testing.T) {
	for _, s := range []*Schema{Single(""), Multi("   "), Single(".a", Children{"x": Multi("")})} {
		assert.NoError(t, Validate(s), "%s", s)
		assert.True(t, IsSchema(s), "%s", s)
	}
}

func TestMalformedError_Message(t *testing.T) {
	err := Validate(Single(".a", Children{"x": nil}))
	assert.EqualError(t, err, "malformed schema at root.x: schema is nil")
}
