package ping

import (
	"time"

	"golang.org/x/sys/unix"
)

const (
	DefaultTimeout = 3000 * time.Millisecond
	recvBufferSize = 1024
)

type Options struct {
	timeout time.Duration
	strict  bool
	id      uint16
	dial    Dialer
}

type Opt func(*Options)

// WithTimeout sets how long a probe waits for a reply.
func WithTimeout(d time.Duration) Opt {
	return func(o *Options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithStrict rejects malformed destinations and only accepts echo replies
// matching the request identifier and sequence.
func WithStrict(strict bool) Opt {
	return func(o *Options) { o.strict = strict }
}

// WithID overrides the echo identifier, the process id by default.
func WithID(id uint16) Opt {
	return func(o *Options) { o.id = id }
}

func WithDialer(dial Dialer) Opt {
	return func(o *Options) {
		if dial != nil {
			o.dial = dial
		}
	}
}

func defaultOptions() Options {
	return Options{
		timeout: DefaultTimeout,
		id:      uint16(unix.Getpid()),
		dial:    DialRaw,
	}
}
