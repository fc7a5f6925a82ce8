package utils

import (
	"github.com/sirupsen/logrus"
)

type NamedCloser struct {
	Name  string
	Close func() error
}

// NamedClosers releases resources acquired in order. Append as each
// resource is acquired and defer a single Close.
type NamedClosers []NamedCloser

type CloseOpt struct {
	ReverseOrder bool
	Logger       logrus.FieldLogger
}

func (closers NamedClosers) Close(opt *CloseOpt) {
	if len(closers) == 0 {
		return
	}

	if opt == nil {
		opt = &CloseOpt{}
	}
	log := opt.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	close := func(c *NamedCloser) {
		err := c.Close()
		if err != nil {
			log.WithError(err).WithField("name", c.Name).Warn("Fail to close")
		} else {
			log.WithField("name", c.Name).Debug("Closed")
		}
	}

	if opt.ReverseOrder {
		for i := len(closers) - 1; i >= 0; i-- {
			close(&closers[i])
		}
	} else {
		for i := range closers {
			close(&closers[i])
		}
	}
}
