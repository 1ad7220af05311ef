package compiler

// ChannelSink forwards events into a channel. Events sent to a nil channel
// are dropped; a send to a full channel blocks the caller until there is
// room, so callers that care about backpressure should size Ch generously
// or drain it promptly.
type ChannelSink struct {
	Ch chan<- Event
}

// OnEvent implements ProgressSink.
func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}
