// Package canvas is an in-memory host canvas for sunshade.
//
// A Document holds one page of nodes, a selection, per-node tags and the
// selection-change and close subscriptions of a plugin session. Handlers
// run synchronously on the goroutine that changes the document; Document
// is not safe for concurrent use.
package canvas

import (
	"fmt"

	"github.com/gogpu/sunshade"
)

// Default size of nodes created through CreateEllipse.
const (
	DefaultNodeWidth  = 100
	DefaultNodeHeight = 100
)

// Document is a single-page canvas.
type Document struct {
	page      *Node
	nodes     map[string]*Node
	nextID    int
	selection []*Node
	tags      sunshade.TagTable

	selectionHandlers handlers
	closeHandlers     handlers
	closed            bool
}

var _ sunshade.Host = (*Document)(nil)

// New returns an empty document.
func New() *Document {
	d := &Document{nodes: make(map[string]*Node)}
	d.page = d.newNode(KindPage, "Page 1")
	return d
}

func (d *Document) newNode(kind Kind, name string) *Node {
	id := fmt.Sprintf("0:%d", d.nextID)
	d.nextID++
	n := &Node{Name: name, Kind: kind, id: id, doc: d}
	d.nodes[id] = n
	return n
}

// Page returns the root page node.
func (d *Document) Page() *Node { return d.page }

// Root returns the page as a shape.
func (d *Document) Root() sunshade.Shape { return d.page }

// Add creates a node of the given kind under parent (the page when nil),
// on top of its siblings.
func (d *Document) Add(parent *Node, kind Kind, name string, x, y, w, h float64, fills ...sunshade.Paint) *Node {
	if parent == nil {
		parent = d.page
	}
	n := d.newNode(kind, name)
	n.X, n.Y, n.Width, n.Height = x, y, w, h
	n.SetFills(fills)
	n.parent = parent
	parent.children = append(parent.children, n)
	return n
}

// AddFrame creates a frame under parent.
func (d *Document) AddFrame(parent *Node, name string, x, y, w, h float64, fills ...sunshade.Paint) *Node {
	return d.Add(parent, KindFrame, name, x, y, w, h, fills...)
}

// AddRectangle creates a rectangle under parent.
func (d *Document) AddRectangle(parent *Node, name string, x, y, w, h float64, fills ...sunshade.Paint) *Node {
	return d.Add(parent, KindRectangle, name, x, y, w, h, fills...)
}

// AddEllipse creates an ellipse under parent.
func (d *Document) AddEllipse(parent *Node, name string, x, y, w, h float64, fills ...sunshade.Paint) *Node {
	return d.Add(parent, KindEllipse, name, x, y, w, h, fills...)
}

// CreateEllipse creates a default-sized ellipse at the page origin.
func (d *Document) CreateEllipse() (sunshade.Shape, error) {
	if d.closed {
		return nil, sunshade.ErrClosed
	}
	return d.AddEllipse(nil, "Ellipse", 0, 0, DefaultNodeWidth, DefaultNodeHeight), nil
}

// Node returns the live node with the given ID, or nil.
func (d *Document) Node(id string) *Node {
	n, ok := d.nodes[id]
	if !ok || n.removed {
		return nil
	}
	return n
}

// Find returns the first live node named name in paint order, or nil.
func (d *Document) Find(name string) *Node {
	var found *Node
	d.page.walk(func(n *Node) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// Remove detaches s and its subtree from the document.
// Removing a node twice returns sunshade.ErrShapeRemoved.
func (d *Document) Remove(s sunshade.Shape) error {
	if s == nil {
		return sunshade.ErrShapeRemoved
	}
	n, ok := d.nodes[s.ID()]
	if !ok || n.removed || n == d.page {
		return fmt.Errorf("canvas: remove %s: %w", s.ID(), sunshade.ErrShapeRemoved)
	}

	if p := n.parent; p != nil {
		for i, c := range p.children {
			if c == n {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	n.parent = nil
	n.markRemoved()

	kept := d.selection[:0]
	for _, sel := range d.selection {
		if !sel.removed {
			kept = append(kept, sel)
		}
	}
	d.selection = kept

	var gone []*Node
	n.walk(func(c *Node) bool { gone = append(gone, c); return true })
	for _, c := range append(gone, n) {
		d.tags.Forget(c)
		delete(d.nodes, c.id)
	}
	return nil
}

// Tag returns the tag stored under key for s.
func (d *Document) Tag(s sunshade.Shape, key string) string {
	return d.tags.Tag(s, key)
}

// SetTag stores a tag for s.
func (d *Document) SetTag(s sunshade.Shape, key, value string) {
	d.tags.SetTag(s, key, value)
}

// Selection returns the selected nodes.
func (d *Document) Selection() []sunshade.Shape {
	out := make([]sunshade.Shape, len(d.selection))
	for i, n := range d.selection {
		out[i] = n
	}
	return out
}

// Select replaces the selection and notifies selection handlers.
// Removed and nil nodes are dropped.
func (d *Document) Select(nodes ...*Node) {
	d.selection = d.selection[:0]
	for _, n := range nodes {
		if n != nil && !n.removed {
			d.selection = append(d.selection, n)
		}
	}
	d.selectionHandlers.fire()
}

// OnSelectionChange registers fn for selection changes.
func (d *Document) OnSelectionChange(fn func()) func() {
	return d.selectionHandlers.add(fn)
}

// OnClose registers fn to run once when the document closes.
func (d *Document) OnClose(fn func()) func() {
	return d.closeHandlers.add(fn)
}

// Close notifies close handlers. Later calls do nothing.
func (d *Document) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.closeHandlers.fire()
}

// Closed reports whether Close has been called.
func (d *Document) Closed() bool { return d.closed }

// HitTest returns the top-most node containing the absolute point, or nil.
func (d *Document) HitTest(x, y float64) *Node {
	var hit *Node
	d.page.walk(func(n *Node) bool {
		if n.Contains(x, y) {
			hit = n
		}
		return true
	})
	return hit
}

// Walk visits every node below the page depth-first in paint order.
func (d *Document) Walk(fn func(*Node)) {
	d.page.walk(func(n *Node) bool { fn(n); return true })
}

// Extent returns the union of all node bounds. An empty page yields the
// zero Rect.
func (d *Document) Extent() sunshade.Rect {
	var r sunshade.Rect
	first := true
	d.Walk(func(n *Node) {
		b := n.Bounds()
		if first {
			r, first = b, false
			return
		}
		r.MinX = min(r.MinX, b.MinX)
		r.MinY = min(r.MinY, b.MinY)
		r.MaxX = max(r.MaxX, b.MaxX)
		r.MaxY = max(r.MaxY, b.MaxY)
	})
	return r
}

// handlers is an ordered subscription list. Cancelled entries are nil.
type handlers struct {
	fns []func()
}

func (h *handlers) add(fn func()) func() {
	h.fns = append(h.fns, fn)
	i := len(h.fns) - 1
	return func() { h.fns[i] = nil }
}

func (h *handlers) fire() {
	for i := 0; i < len(h.fns); i++ {
		if fn := h.fns[i]; fn != nil {
			fn()
		}
	}
}
