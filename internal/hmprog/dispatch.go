// Public domain.

package hmprog

import (
	"github.com/soniakeys/hirsmoon/internal/hmcal"
	"github.com/soniakeys/hirsmoon/internal/hmcube"
)

type chanSeq struct {
	ch  int
	rch chan hmcal.ChannelResult
}

// dispatch calibrates all channels on up to maxWorkers goroutines.
//
// The returned channel delivers one result channel per HIRS channel, in
// channel order.  Each works like a ticket for picking up the result of
// that channel.  It is buffered so that a fast worker can drop off its
// result without waiting for workers ahead of it.
func dispatch(p *hmcal.Pipeline, maxWorkers int) <-chan chan hmcal.ChannelResult {
	prCh := make(chan chan hmcal.ChannelResult, maxWorkers*2)
	chSeq := make(chan *chanSeq)

	// dispatcher.  for each channel, create the ticket, hand the channel
	// to a worker and queue the ticket for the caller.
	go func() {
		for ch := 1; ch <= hmcube.NumChannels; ch++ {
			rch := make(chan hmcal.ChannelResult, 1)
			chSeq <- &chanSeq{ch, rch}
			prCh <- rch
		}
		close(chSeq)
		close(prCh)
	}()

	// workers are started only as the dispatcher calls for them.
	go func() {
		for n := 0; n < maxWorkers; n++ {
			c, ok := <-chSeq
			if !ok {
				return
			}
			go work(p, c, chSeq)
		}
	}()
	return prCh
}

// work calibrates c, then further channels from chSeq until it closes.
func work(p *hmcal.Pipeline, c *chanSeq, chSeq chan *chanSeq) {
	for ok := true; ok; c, ok = <-chSeq {
		c.rch <- p.Channel(c.ch)
	}
}
