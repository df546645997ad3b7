package x11

import (
	"context"

	"github.com/BurntSushi/xgb"
)

// ReceiveEvents pumps events from the display connection into out until
// the context is cancelled or the connection drops. The channel is
// closed on return so the consumer observes the end of the stream.
func (c *Connection) ReceiveEvents(ctx context.Context, out chan<- xgb.Event) {
	defer close(out)
	for {
		ev, xerr := c.conn().WaitForEvent()
		if ev == nil && xerr == nil {
			c.log.Error("display connection lost")
			return
		}
		if xerr != nil {
			// Asynchronous errors are routine: acting on a window that
			// vanished in flight reports one. Log and move on.
			c.log.Debug("x error", "error", xerr)
			continue
		}
		select {
		case <-ctx.Done():
			return
		case out <- ev:
		}
	}
}
