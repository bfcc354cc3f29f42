// Package domain lists the endpoint groups of every blog domain.
package domain

import (
	stderrors "errors"

	"github.com/reoring/blogschema/domain/comment"
	"github.com/reoring/blogschema/domain/emote"
	"github.com/reoring/blogschema/domain/post"
	"github.com/reoring/blogschema/domain/project"
	"github.com/reoring/blogschema/domain/user"
	"github.com/reoring/blogschema/endpoint"
	"github.com/reoring/blogschema/ids"
)

// Groups returns every group in a stable order.
func Groups() []*endpoint.Group {
	return []*endpoint.Group{
		user.Endpoints,
		post.Endpoints,
		comment.Endpoints,
		emote.Endpoints,
		project.Endpoints,
	}
}

// Group returns the group called name.
func Group(name string) (*endpoint.Group, bool) {
	for _, g := range Groups() {
		if g.Name() == name {
			return g, true
		}
	}
	return nil, false
}

// Check builds the identifier registry and checks every group against it.
func Check() error {
	reg, err := ids.Registry()
	if err != nil {
		return err
	}
	var errs []error
	for _, g := range Groups() {
		if err := g.Check(reg); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}
