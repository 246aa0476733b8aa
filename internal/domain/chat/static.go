package chat

import (
	"context"
	"strings"
	"time"
)

const staticReply = "This is a static response from AyurBot. To enable live chat, please ensure your Google Cloud project has billing enabled and a valid API key is in your .env file."

// StaticStreamer replays a fixed reply word by word with a small delay
// between chunks, simulating a live model stream. The first chunk is the
// bare word; every later chunk carries its leading space.
type StaticStreamer struct {
	reply string
	delay time.Duration
}

func NewStaticStreamer(delay time.Duration) *StaticStreamer {
	return &StaticStreamer{reply: staticReply, delay: delay}
}

func (s *StaticStreamer) Stream(ctx context.Context, history []Message) (<-chan Chunk, error) {
	out := make(chan Chunk)
	go func() {
		defer close(out)
		for i, word := range strings.Split(s.reply, " ") {
			text := word
			if i > 0 {
				text = " " + word
			}
			select {
			case out <- Chunk{Text: text}:
			case <-ctx.Done():
				return
			}
			if s.delay > 0 {
				select {
				case <-time.After(s.delay):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
