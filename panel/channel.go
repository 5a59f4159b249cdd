package panel

import "github.com/gogpu/sunshade"

// Channel connects the plugin to one panel.
//
// Updates keep only the latest undelivered value: an Emit while a previous
// update is still pending replaces it. Channel is safe for one sender and
// one receiver per direction.
type Channel struct {
	updates chan Message
	closes  chan struct{}
}

var _ sunshade.Emitter = (*Channel)(nil)

// NewChannel returns an idle channel.
func NewChannel() *Channel {
	return &Channel{
		updates: make(chan Message, 1),
		closes:  make(chan struct{}, 1),
	}
}

// Emit sends a VALUE_UPDATE without blocking.
func (c *Channel) Emit(s sunshade.Summary) {
	msg := ValueUpdate(s)
	for {
		select {
		case c.updates <- msg:
			return
		default:
		}
		// Drop the stale update, if the receiver has not taken it meanwhile.
		select {
		case <-c.updates:
		default:
		}
	}
}

// Updates delivers VALUE_UPDATE messages to the panel.
func (c *Channel) Updates() <-chan Message {
	return c.updates
}

// Latest returns the pending update, if any, without waiting.
func (c *Channel) Latest() (Message, bool) {
	select {
	case m := <-c.updates:
		return m, true
	default:
		return Message{}, false
	}
}

// RequestClose sends a CLOSE request to the plugin. Repeated requests
// before the plugin reads the first one collapse into it.
func (c *Channel) RequestClose() {
	select {
	case c.closes <- struct{}{}:
	default:
	}
}

// Closes delivers CLOSE requests to the plugin.
func (c *Channel) Closes() <-chan struct{} {
	return c.closes
}
