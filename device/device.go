// Package device assembles the codec core into a servable EtherNet/IP
// device: an object dictionary, the encapsulation command dispatch, and a
// TCP accept loop.
package device

import (
	"net"
	"strconv"
	"sync"

	"eiplink/cip"
	"eiplink/config"
	"eiplink/eip"
	"eiplink/logging"
)

// Device is a single EtherNet/IP target: the standard objects it serves and
// the session registry for its listening endpoint.
type Device struct {
	identity *cip.Identity
	router   *cip.StaticAttr
	services eip.Services

	events *logging.EventLogger

	// The session registry performs no locking of its own; the device
	// serializes access across connection handlers here.
	mu      sync.Mutex
	session *eip.Session
}

// New builds a device from the configuration.
func New(cfg *config.Config) *Device {
	id := cip.NewIdentity(
		cfg.Identity.VendorID,
		cfg.Identity.DeviceType,
		cfg.Identity.ProductCode,
		cfg.Identity.Revision(),
		cfg.Identity.SerialNumber,
		cfg.Identity.ProductName,
	)
	id.SocketAddress = eip.ServerSocketAddress(0, listenPort(cfg.Listen))

	return &Device{
		identity: id,
		router:   cip.NewStaticAttr(1, 1, 1),
		services: eip.ServerServices(),
		session:  eip.NewSession(),
	}
}

// SetEventLogger attaches a connection event log.  A nil logger disables
// event logging.
func (d *Device) SetEventLogger(l *logging.EventLogger) {
	d.events = l
}

// Identity returns the served Identity object.  The caller owns updates to
// the dynamic attributes (status, state, heartbeat).
func (d *Device) Identity() *cip.Identity {
	return d.identity
}

func (d *Device) event(remote, format string, args ...interface{}) {
	if d.events != nil {
		d.events.Event(remote, format, args...)
	}
}

// listenPort extracts the port number a listen address advertises in the
// identity socket address.  Unparseable addresses fall back to 44818.
func listenPort(addr string) uint16 {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 44818
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return 44818
	}
	return uint16(port)
}
