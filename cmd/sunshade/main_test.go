package main

import (
	"errors"
	"testing"

	"github.com/gogpu/sunshade"
	"github.com/gogpu/sunshade/canvas"
)

// stuckDoc refuses to remove shapes until released.
type stuckDoc struct {
	*canvas.Document
	stuck bool
}

var errStuck = errors.New("remove refused")

func (d *stuckDoc) Remove(s sunshade.Shape) error {
	if d.stuck {
		return errStuck
	}
	return d.Document.Remove(s)
}

func TestCloseSession(t *testing.T) {
	doc := canvas.New()
	p, err := sunshade.Start(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := closeSession(doc, p); err != nil {
		t.Fatalf("closeSession() = %v", err)
	}
	if !p.Light().Shape().Removed() {
		t.Error("light not removed")
	}
}

func TestCloseSession_RemoveFails(t *testing.T) {
	doc := &stuckDoc{Document: canvas.New(), stuck: true}
	p, err := sunshade.Start(doc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := closeSession(doc, p); !errors.Is(err, errStuck) {
		t.Fatalf("closeSession() = %v, want %v", err, errStuck)
	}
	if p.Closed() {
		t.Error("plugin reported closed with the light still present")
	}

	doc.stuck = false
	if err := closeSession(doc, p); err != nil {
		t.Fatalf("retry closeSession() = %v", err)
	}
	if !p.Light().Shape().Removed() {
		t.Error("light not removed on retry")
	}
}
