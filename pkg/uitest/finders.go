package uitest

import (
	"fmt"
	"testing"

	"github.com/go-quill/quill/pkg/core"
)

// Finder matches widgets in the element tree.
type Finder interface {
	// Matches reports whether the widget satisfies the finder.
	Matches(widget core.Widget) bool
	// Description returns a human-readable description for failures.
	Description() string
}

// FinderResult wraps matched element ids with convenient accessors.
type FinderResult struct {
	t      *testing.T
	ids    []core.ElementID
	finder Finder
}

// Exists reports whether the finder matched anything.
func (r FinderResult) Exists() bool {
	return len(r.ids) > 0
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.ids)
}

// All returns every match in traversal order.
func (r FinderResult) All() []core.ElementID {
	return r.ids
}

// First returns the first match, failing the test if there is none.
func (r FinderResult) First() core.ElementID {
	if len(r.ids) == 0 {
		r.t.Helper()
		r.t.Fatalf("finder found no elements: %s", r.finder.Description())
		return core.NoElement
	}
	return r.ids[0]
}

type typeFinder[W core.Widget] struct{}

func (typeFinder[W]) Matches(widget core.Widget) bool {
	_, ok := widget.(W)
	return ok
}

func (typeFinder[W]) Description() string {
	var zero W
	return fmt.Sprintf("widgets of type %T", zero)
}

// ByType matches widgets of a concrete type.
func ByType[W core.Widget]() Finder {
	return typeFinder[W]{}
}

type predicateFinder struct {
	predicate   func(core.Widget) bool
	description string
}

func (f predicateFinder) Matches(widget core.Widget) bool {
	return f.predicate(widget)
}

func (f predicateFinder) Description() string {
	return f.description
}

// ByPredicate matches widgets satisfying an arbitrary predicate.
func ByPredicate(description string, predicate func(core.Widget) bool) Finder {
	return predicateFinder{predicate: predicate, description: description}
}
