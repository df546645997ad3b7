// Package logging provides the asynchronous file sink and the fanout
// slog handler that splits log output between stderr and the file.
package logging

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
)

const defaultMaxQueue = 256

// FileSink buffers log lines in memory and appends them to a file from
// its own service goroutine, so logging never blocks the event loop on
// disk I/O. When the queue is full the oldest line is dropped.
type FileSink struct {
	path string

	mu       sync.Mutex
	cond     *sync.Cond
	queue    [][]byte
	closed   bool
	maxQueue int
}

// NewFileSink creates a sink appending to path. Serve must be running
// for writes to reach the file.
func NewFileSink(path string) *FileSink {
	s := &FileSink{
		path:     path,
		maxQueue: defaultMaxQueue,
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *FileSink) String() string {
	return "logsink"
}

// Write queues one log line. It never blocks on disk I/O.
func (s *FileSink) Write(p []byte) (int, error) {
	line := make([]byte, len(p))
	copy(line, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, errors.New("log sink closed")
	}
	if len(s.queue) >= s.maxQueue {
		s.queue = s.queue[1:]
	}
	s.queue = append(s.queue, line)
	s.cond.Signal()
	return len(p), nil
}

// Serve drains the queue into the file until the context is cancelled,
// then flushes whatever is still queued.
func (s *FileSink) Serve(ctx context.Context) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", s.path, err)
	}
	defer f.Close()

	stop := context.AfterFunc(ctx, func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
		s.cond.Broadcast()
	})
	defer stop()

	for {
		s.mu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.cond.Wait()
		}
		batch := s.queue
		s.queue = nil
		closed := s.closed
		s.mu.Unlock()

		for _, line := range batch {
			if _, err := f.Write(line); err != nil {
				return fmt.Errorf("writing log file %s: %w", s.path, err)
			}
		}
		if closed {
			return ctx.Err()
		}
	}
}
