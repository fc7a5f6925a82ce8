package ping

import (
	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
	"github.com/zxhio/xping/pkg/netaddr"
)

// logRoute logs the kernel's egress route towards dst. Lookup failures
// only matter for diagnostics and are logged, not returned.
func logRoute(log logrus.FieldLogger, dst netaddr.IPv4Addr) {
	routes, err := netlink.RouteGet(dst.ToIP())
	if err != nil {
		log.WithError(err).Debug("Fail to get route")
		return
	}

	for _, r := range routes {
		fields := logrus.Fields{"src": r.Src, "gw": r.Gw, "ifindex": r.LinkIndex}
		if link, err := netlink.LinkByIndex(r.LinkIndex); err == nil {
			fields["iface"] = link.Attrs().Name
		}
		log.WithFields(fields).Debug("Route")
	}
}
