package ping

import (
	"encoding/hex"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zxhio/xping/internal/errcode"
	"github.com/zxhio/xping/pkg/fastpkt"
	"github.com/zxhio/xping/pkg/netaddr"
	"github.com/zxhio/xping/pkg/utils"
)

// Probe states, logged at debug level.
const (
	stateInit          = "init"
	stateSocketOpen    = "socket-open"
	stateConfigured    = "configured"
	stateSent          = "sent"
	stateAwaitingReply = "awaiting-reply"
	stateSucceeded     = "succeeded"
	stateTimedOut      = "timed-out"
	stateFailed        = "failed"
)

// Prober sends one echo request per Probe call. Every call opens and
// closes its own socket, nothing is shared between calls.
type Prober struct {
	opts Options
}

func NewProber(opts ...Opt) *Prober {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Prober{opts: o}
}

// ID is the echo identifier carried by every request of this prober.
func (p *Prober) ID() uint16 { return p.opts.id }

func (p *Prober) Timeout() time.Duration { return p.opts.timeout }

// Probe runs a full cycle against host: open, configure, send, wait for a
// reply and close. Errors carry an errcode.Code.
func (p *Prober) Probe(host string) (*Reply, error) {
	log := logrus.WithFields(logrus.Fields{"host": host, "id": p.opts.id})
	log.WithField("state", stateInit).Debug("Probe")

	var closers utils.NamedClosers
	defer func() { closers.Close(&utils.CloseOpt{ReverseOrder: true, Logger: log}) }()

	conn, err := p.opts.dial()
	if err != nil {
		log.WithError(err).WithField("state", stateFailed).Debug("Probe")
		return nil, errcode.NewError(errcode.CodeSocketCreate, "ソケットの作成に失敗しました", err)
	}
	closers = append(closers, utils.NamedCloser{Name: "raw socket", Close: conn.Close})
	log.WithField("state", stateSocketOpen).Debug("Probe")

	err = conn.SetReadTimeout(p.opts.timeout)
	if err != nil {
		log.WithError(err).WithField("state", stateFailed).Debug("Probe")
		return nil, errcode.NewError(errcode.CodeInit, "ソケットの初期化に失敗しました", err)
	}
	log.WithFields(logrus.Fields{"state": stateConfigured, "timeout": p.opts.timeout}).Debug("Probe")

	dst, err := p.parseDestination(host)
	if err != nil {
		log.WithError(err).WithField("state", stateFailed).Debug("Probe")
		return nil, err
	}

	req := fastpkt.NewEchoRequest(p.opts.id, 0)
	if utils.IsVerbose() {
		logRoute(log, dst)
		pkt := gopacket.NewPacket(req.Bytes(), layers.LayerTypeICMPv4, gopacket.Default)
		log.Debugf("Send packet %d bytes\n%s%s", len(req.Bytes()), pkt, hex.Dump(req.Bytes()))
	}

	n, err := conn.WriteTo(req.Bytes(), dst)
	if err == nil && n != fastpkt.SizeofEchoRequest {
		err = errors.Errorf("short write %d/%d bytes", n, fastpkt.SizeofEchoRequest)
	}
	if err != nil {
		log.WithError(err).WithField("state", stateFailed).Debug("Probe")
		return nil, errcode.NewError(errcode.CodeSend, "送信に失敗しました", err)
	}
	log.WithFields(logrus.Fields{"state": stateSent, "dst": dst, "bytes": n}).Debug("Probe")

	return p.awaitReply(log, conn, host, req)
}

func (p *Prober) parseDestination(host string) (netaddr.IPv4Addr, error) {
	var dst netaddr.IPv4Addr
	err := dst.Set(host)
	if err == nil {
		return dst, nil
	}
	if p.opts.strict {
		return 0, errcode.NewError(errcode.CodeArgumentFormat, "エラー: IPv4アドレスを入力してください", err)
	}
	// Malformed input is sent to the unspecified address without complaint.
	logrus.WithError(err).Debug("Use unspecified address")
	return netaddr.ParseIPv4Lax(host), nil
}

func (p *Prober) awaitReply(log logrus.FieldLogger, conn Conn, host string, req *fastpkt.EchoRequest) (*Reply, error) {
	var (
		buf      = make([]byte, recvBufferSize)
		deadline = time.Now().Add(p.opts.timeout)
	)
	log.WithField("state", stateAwaitingReply).Debug("Probe")

	start := time.Now()
	for {
		n, from, err := conn.ReadFrom(buf)
		end := time.Now()

		if errors.Is(err, ErrTimeout) {
			log.WithField("state", stateTimedOut).Debug("Probe")
			return nil, errcode.NewMessage(errcode.CodeReceiveTimeout, "要求がタイムアウトしました。")
		}
		if err != nil {
			log.WithError(err).WithField("state", stateFailed).Debug("Probe")
			return nil, errcode.NewError(errcode.CodeReceive, "受信に失敗しました", err)
		}

		reply := &Reply{Host: host, Addr: from, RTT: end.Sub(start), Len: n}
		msg, err := parseMessage(buf[:n])
		if err == nil {
			msg.fill(reply)
		} else {
			log.WithError(err).Debug("Undecodable datagram")
		}

		if p.opts.strict && (msg == nil || !msg.isEchoReplyFor(int(req.EchoID()), int(req.EchoSeq()))) {
			log.WithFields(logrus.Fields{"from": from, "type": reply.Type, "echo_id": reply.ID}).Debug("Skip unrelated datagram")

			remain := time.Until(deadline)
			if remain <= 0 {
				log.WithField("state", stateTimedOut).Debug("Probe")
				return nil, errcode.NewMessage(errcode.CodeReceiveTimeout, "要求がタイムアウトしました。")
			}
			err = conn.SetReadTimeout(remain)
			if err != nil {
				return nil, errcode.NewError(errcode.CodeReceive, "受信に失敗しました", err)
			}
			continue
		}

		log.WithFields(logrus.Fields{
			"state": stateSucceeded,
			"from":  from,
			"bytes": n,
			"ttl":   reply.TTL,
			"type":  reply.Type,
			"rtt":   reply.RTT,
		}).Debug("Probe")
		return reply, nil
	}
}
