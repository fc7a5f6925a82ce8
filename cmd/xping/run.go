package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zxhio/xping/internal/errcode"
	"github.com/zxhio/xping/internal/ping"
	"github.com/zxhio/xping/pkg/utils"
	"golang.org/x/time/rate"
)

type prober interface {
	Probe(host string) (*ping.Reply, error)
}

type runner struct {
	prober    prober
	limiter   *rate.Limiter
	keepGoing bool
	stdout    io.Writer
	stderr    io.Writer
}

// newLimiter spaces repeat starts by interval, zero means back to back.
func newLimiter(interval time.Duration) *rate.Limiter {
	return rate.NewLimiter(rate.Every(interval), 1)
}

// run probes host count times in sequence. Without keepGoing the first
// failure is returned as is and the remaining repeats are skipped.
func (r *runner) run(host string, count int) error {
	var (
		failed int
		first  error
	)

	for i := 0; i < count; i++ {
		err := r.limiter.Wait(context.Background())
		if err != nil {
			return err
		}

		reply, err := r.prober.Probe(host)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"repeat": i + 1, "code": errcode.CodeOf(err)}).Debug("Probe failed")
			if !r.keepGoing {
				return err
			}
			utils.PrintError(r.stderr, err)
			if first == nil {
				first = err
			}
			failed++
			continue
		}
		fmt.Fprintln(r.stdout, reply)
	}

	if failed > 0 {
		return errcode.New(errcode.CodeOf(first), "%d/%d 回の要求が失敗しました", failed, count)
	}
	return nil
}
