// Package ids declares every error identifier used by the blog contracts,
// grouped by domain. Other packages take identifiers from here only.
package ids

import (
	"sync"

	"github.com/reoring/blogschema/errid"
)

// Domains is the merged identifier tree.
type Domains struct {
	General GeneralIDs `errid:"general"`
	Request RequestIDs `errid:"request"`
	User    UserIDs    `errid:"user"`
	Post    PostIDs    `errid:"post"`
	Comment CommentIDs `errid:"comment"`
	Emote   EmoteIDs   `errid:"emote"`
	Project ProjectIDs `errid:"project"`
}

// All returns every domain in one value.
func All() Domains {
	return Domains{
		General: General,
		Request: Request,
		User:    User,
		Post:    Post,
		Comment: Comment,
		Emote:   Emote,
		Project: Project,
	}
}

var registry = sync.OnceValues(func() (*errid.Registry, error) {
	tree, err := errid.TreeOf(All())
	if err != nil {
		return nil, err
	}
	return errid.NewRegistry(tree)
})

// Registry returns the global registry, checking uniqueness on first call.
func Registry() (*errid.Registry, error) { return registry() }

// MustRegistry is like Registry but panics when the identifiers collide.
func MustRegistry() *errid.Registry {
	r, err := registry()
	if err != nil {
		panic(err)
	}
	return r
}
