package errid_test

import (
	stderrors "errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/blogschema/errid"
)

func TestNewRegistry_DistinctLeaves(t *testing.T) {
	reg, err := errid.NewRegistry(errid.Tree{
		"user": errid.Tree{
			"notFound":         errid.ID{Code: 2000, Message: "User not found"},
			"usernameTooShort": errid.ID{Code: 2001, Message: "Username is too short"},
		},
		"post": errid.Tree{
			"notFound": errid.ID{Code: 3000, Message: "Post not found"},
			"title": errid.Tree{
				"tooLong": errid.ID{Code: 3001, Message: "Title is too long"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, []string{"post", "user"}, reg.Domains())

	leaves := reg.Leaves()
	require.Len(t, leaves, 4)
	assert.Equal(t, 2000, leaves[0].ID.Code)
	assert.Equal(t, "post.title.tooLong", leaves[3].Key())

	id, ok := reg.Get("post", "title", "tooLong")
	require.True(t, ok)
	assert.Equal(t, 3001, id.Code)

	l, ok := reg.Lookup(2001)
	require.True(t, ok)
	assert.Equal(t, []string{"user", "usernameTooShort"}, l.Path)

	l, ok = reg.LookupMessage("Post not found")
	require.True(t, ok)
	assert.Equal(t, 3000, l.ID.Code)

	assert.True(t, reg.Contains(errid.ID{Code: 3000, Message: "Post not found"}))
	assert.False(t, reg.Contains(errid.ID{Code: 3000, Message: "other"}))
}

func TestNewRegistry_DuplicateCodeAcrossDomains(t *testing.T) {
	_, err := errid.NewRegistry(errid.Tree{
		"user": errid.Tree{"a": errid.ID{Code: 1, Message: "a"}},
		"post": errid.Tree{"nested": errid.Tree{"b": errid.ID{Code: 1, Message: "b"}}},
	})
	require.Error(t, err)
	assert.Equal(t, errid.TextCodeDuplicateCode, errid.TextCode(err))

	cs := errid.Collisions(err)
	require.Len(t, cs, 1)
	assert.Equal(t, "code", cs[0].Kind)
	assert.Equal(t, 1, cs[0].Value)
	assert.ElementsMatch(t, [][]string{{"user", "a"}, {"post", "nested", "b"}}, cs[0].Paths)
	assert.Contains(t, errorMessage(t, err), "post.nested.b")
}

func TestNewRegistry_DuplicateMessage(t *testing.T) {
	_, err := errid.NewRegistry(errid.Tree{
		"comment": errid.Tree{"notFound": errid.ID{Code: 4000, Message: "Not found"}},
		"emote":   errid.Tree{"notFound": errid.ID{Code: 5000, Message: "Not found"}},
	})
	require.Error(t, err)
	assert.Equal(t, errid.TextCodeDuplicateMessage, errid.TextCode(err))

	cs := errid.Collisions(err)
	require.Len(t, cs, 1)
	assert.Equal(t, "message", cs[0].Kind)
	assert.Equal(t, "Not found", cs[0].Value)
}

func TestNewRegistry_ReportsEveryCollision(t *testing.T) {
	_, err := errid.NewRegistry(errid.Tree{
		"a": errid.ID{Code: 1, Message: "x"},
		"b": errid.ID{Code: 1, Message: "x"},
		"c": errid.ID{Code: 2, Message: "y"},
		"d": errid.ID{Code: 2, Message: "z"},
	})
	require.Error(t, err)
	assert.Equal(t, errid.TextCodeDuplicateCode, errid.TextCode(err))

	cs := errid.Collisions(err)
	require.Len(t, cs, 3)
	assert.Equal(t, "code", cs[0].Kind)
	assert.Equal(t, "code", cs[1].Kind)
	assert.Equal(t, "message", cs[2].Kind)
}

func TestNewRegistry_InvalidNodes(t *testing.T) {
	cases := map[string]errid.Tree{
		"string leaf": {"user": errid.Tree{"bad": "1|oops"}},
		"int leaf":    {"user": 42},
		"nil leaf":    {"user": nil},
		"int map key": {"user": map[int]errid.ID{1: {Code: 1, Message: "m"}}},
	}
	for name, tree := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := errid.NewRegistry(tree)
			require.Error(t, err)
			assert.Equal(t, errid.TextCodeInvalidNode, errid.TextCode(err))
		})
	}
}

func TestNewRegistry_InvalidID(t *testing.T) {
	_, err := errid.NewRegistry(errid.Tree{"user": errid.Tree{"empty": errid.ID{Code: 1}}})
	require.Error(t, err)
	assert.Equal(t, errid.TextCodeInvalidID, errid.TextCode(err))
	assert.Contains(t, errorMessage(t, err), "user.empty")

	_, err = errid.NewRegistry(errid.Tree{"user": errid.Tree{"multi": errid.ID{Code: 2, Message: "a\nb"}}})
	require.Error(t, err)
	assert.Equal(t, errid.TextCodeInvalidID, errid.TextCode(err))
}

func TestNewRegistry_Empty(t *testing.T) {
	reg, err := errid.NewRegistry(nil)
	require.NoError(t, err)
	assert.Zero(t, reg.Len())
}

func TestTreeOf_Struct(t *testing.T) {
	domain := struct {
		NotFound errid.ID
		Username struct {
			TooShort errid.ID
			TooLong  errid.ID `errid:"max"`
		}
		Ignored errid.ID `errid:"-"`
		hidden  errid.ID
	}{}
	domain.NotFound = errid.ID{Code: 10, Message: "not found"}
	domain.Username.TooShort = errid.ID{Code: 11, Message: "too short"}
	domain.Username.TooLong = errid.ID{Code: 12, Message: "too long"}
	domain.hidden = errid.ID{Code: 10, Message: "not found"}

	reg, err := errid.NewRegistry(errid.Tree{"user": domain})
	require.NoError(t, err)
	assert.Equal(t, 3, reg.Len())

	id, ok := reg.Get("user", "username", "max")
	require.True(t, ok)
	assert.Equal(t, 12, id.Code)

	_, ok = reg.Get("user", "ignored")
	assert.False(t, ok)
}

func TestTreeOf_RejectsLeafRoot(t *testing.T) {
	_, err := errid.TreeOf(errid.ID{Code: 1, Message: "m"})
	require.Error(t, err)
	assert.Equal(t, errid.TextCodeInvalidNode, errid.TextCode(err))
}

func TestRegistry_Resolve(t *testing.T) {
	reg := errid.MustRegistry(errid.Tree{"general": errid.Tree{"internal": errid.ID{Code: 1000, Message: "Internal error"}}})

	l, err := reg.Resolve("1000|Internal error")
	require.NoError(t, err)
	assert.Equal(t, "general.internal", l.Key())

	_, err = reg.Resolve("1001|Internal error")
	require.Error(t, err)
	assert.Equal(t, errid.TextCodeUnknown, errid.TextCode(err))

	_, err = reg.Resolve("garbage")
	assert.True(t, errid.IsMalformed(err))
}

func TestRegistry_TreeIsCopy(t *testing.T) {
	reg := errid.MustRegistry(errid.Tree{"a": errid.Tree{"b": errid.ID{Code: 1, Message: "m"}}})
	tree := reg.Tree()
	tree["a"].(errid.Tree)["b"] = errid.ID{Code: 2, Message: "changed"}

	id, ok := reg.Get("a", "b")
	require.True(t, ok)
	assert.Equal(t, 1, id.Code)
}

func TestMustRegistry_Panics(t *testing.T) {
	assert.Panics(t, func() {
		errid.MustRegistry(errid.Tree{
			"a": errid.ID{Code: 1, Message: "m"},
			"b": errid.ID{Code: 1, Message: "n"},
		})
	})
}

func errorMessage(t *testing.T, err error) string {
	t.Helper()
	var ge *goerrors.Error
	require.True(t, stderrors.As(err, &ge))
	return ge.Message
}
