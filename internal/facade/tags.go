// Copyright (c) 2026 Kirinukist. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facade

import (
	"context"

	"github.com/taibuivan/kirinukist/internal/core/relation"
	"github.com/taibuivan/kirinukist/internal/core/tag"
)

// Tags is the tag facade. Tags are shared; any identified caller may manage them.
type Tags struct {
	base     relation.Base
	expander *relation.Tags
}

// Get returns tag id as Basic (*tag.Tag) or WithVideos (*relation.TagWithVideos).
func (facade *Tags) Get(context context.Context, id string, view View) (any, error) {
	switch view {
	case ViewBasic:
		return facade.base.Tags.Get(context, id)
	case ViewWithVideos:
		return facade.expander.Expand(context, id)
	default:
		return nil, unsupported("tags", view)
	}
}

// List returns every tag as Basic ([]*tag.Tag) or WithVideos ([]*relation.TagWithVideos).
func (facade *Tags) List(context context.Context, view View) (any, error) {
	switch view {
	case ViewBasic:
		return facade.base.Tags.List(context)
	case ViewWithVideos:
		return facade.expander.ExpandAll(context)
	default:
		return nil, unsupported("tag lists", view)
	}
}

func (facade *Tags) Create(context context.Context, input tag.CreateInput) (string, error) {
	return facade.base.Tags.Create(context, input)
}

func (facade *Tags) Update(context context.Context, id string, patch tag.Patch) error {
	return facade.base.Tags.Update(context, id, patch)
}

func (facade *Tags) Delete(context context.Context, id string) error {
	return facade.base.Tags.Delete(context, id)
}
