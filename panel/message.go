// Package panel is the plugin side of the summary panel UI.
//
// The plugin pushes VALUE_UPDATE messages carrying the latest shadow
// Summary; the panel answers with a single CLOSE request. Both directions
// are one-way and never block the sender.
package panel

import "github.com/gogpu/sunshade"

// Kind is the panel message type.
type Kind string

const (
	// KindValueUpdate carries a new Summary to the panel.
	KindValueUpdate Kind = "VALUE_UPDATE"
	// KindClose asks the plugin to shut down.
	KindClose Kind = "CLOSE"
)

// Message is one panel message. Summary is set for KindValueUpdate only.
type Message struct {
	Kind    Kind             `json:"type"`
	Summary sunshade.Summary `json:"data"`
}

// ValueUpdate returns a VALUE_UPDATE message for s.
func ValueUpdate(s sunshade.Summary) Message {
	return Message{Kind: KindValueUpdate, Summary: s}
}
