package sunshade

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
)

// Light tag. Any non-empty value marks a shape as the light.
const (
	LightTag      = "is-sun"
	LightTagValue = "TRUE"
)

// LightFill is the solid fill given to the light shape.
var LightFill = Solid(gg.White)

// Light owns the synthetic shape that models the sun.
// Only one light is expected per document.
type Light struct {
	factory  ShapeFactory
	tagger   Tagger
	shape    Shape
	log      *slog.Logger
	disposed bool
}

// NewLight creates the light shape, fills it and tags it.
func NewLight(factory ShapeFactory, tagger Tagger) (*Light, error) {
	return newLight(factory, tagger, Logger())
}

func newLight(factory ShapeFactory, tagger Tagger, log *slog.Logger) (*Light, error) {
	shape, err := factory.CreateEllipse()
	if err != nil {
		return nil, fmt.Errorf("sunshade: create light: %w", err)
	}
	shape.SetFills([]Paint{LightFill})
	tagger.SetTag(shape, LightTag, LightTagValue)

	log.Info("light created", "id", shape.ID())
	return &Light{factory: factory, tagger: tagger, shape: shape, log: log}, nil
}

// Shape returns the light shape.
func (l *Light) Shape() Shape {
	return l.shape
}

// Is reports whether s is the light, either by identity or by tag.
func (l *Light) Is(s Shape) bool {
	if s == nil {
		return false
	}
	return sameShape(s, l.shape) || IsLight(l.tagger, s)
}

// Dispose removes the light from the document. A light that was already
// removed, by an earlier Dispose or externally, is not an error.
func (l *Light) Dispose() error {
	if l.disposed {
		return nil
	}
	if l.shape.Removed() {
		l.disposed = true
		l.log.Warn("light already removed", "id", l.shape.ID())
		return nil
	}
	if err := l.factory.Remove(l.shape); err != nil {
		if !errors.Is(err, ErrShapeRemoved) {
			return fmt.Errorf("sunshade: remove light: %w", err)
		}
		l.disposed = true
		l.log.Warn("light already removed", "id", l.shape.ID())
		return nil
	}
	l.disposed = true
	l.log.Info("light disposed", "id", l.shape.ID())
	return nil
}

// IsLight reports whether s carries the light tag.
func IsLight(tagger Tagger, s Shape) bool {
	if s == nil || tagger == nil {
		return false
	}
	return tagger.Tag(s, LightTag) != ""
}
