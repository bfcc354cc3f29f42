package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/blogschema/domain"
)

func TestCheck(t *testing.T) {
	require.NoError(t, domain.Check())
}

func TestGroups(t *testing.T) {
	var names []string
	for _, g := range domain.Groups() {
		names = append(names, g.Name())
	}
	assert.Equal(t, []string{"user", "post", "comment", "emote", "project"}, names)

	g, ok := domain.Group("post")
	require.True(t, ok)
	assert.Contains(t, g.Names(), "list")

	_, ok = domain.Group("nope")
	assert.False(t, ok)
}

func TestGroups_JSONSchemaExport(t *testing.T) {
	for _, g := range domain.Groups() {
		for _, e := range g.Endpoints() {
			doc, err := e.JSONSchema()
			require.NoError(t, err, e.Name)
			assert.NotEmpty(t, doc.Responses, e.Name)
		}
	}
}
