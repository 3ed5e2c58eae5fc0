// Package rawsock provides low-level access to Linux AF_PACKET sockets:
// opening a raw packet socket bound to a named network interface, toggling
// interface flags such as promiscuous mode via ioctl, and getting/setting
// packet-socket-level options such as PACKET_FANOUT.
//
// Every operation is a single system call with an error check. Packet
// capture, filtering and frame buffering are left to callers.
package rawsock

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// SocketKind selects the framing of the packet socket.
type SocketKind int

// Socket kinds accepted by New.
const (
	// Raw delivers frames with the link-layer header included.
	Raw SocketKind = 1 << iota
	// Datagram delivers frames with the link-layer header removed.
	Datagram
)

// Set is here so that SocketKind can implement flag.Var
func (k *SocketKind) Set(v string) error {
	switch v {
	case "", "raw":
		*k = Raw
	case "dgram", "datagram":
		*k = Datagram
	default:
		return fmt.Errorf("invalid socket kind %s", v)
	}
	return nil
}

func (k *SocketKind) String() (s string) {
	switch *k {
	case Raw:
		s = "raw"
	case Datagram:
		s = "datagram"
	default:
		s = ""
	}
	return s
}

// ErrNameTooLong returned when an interface name does not fit the
// fixed-size kernel name field (15 bytes plus terminator on Linux)
type ErrNameTooLong string

func (err ErrNameTooLong) Error() string {
	return "interface name too long: " + string(err)
}

// ErrNameEncoding returned when an interface name contains an embedded
// terminator byte, which the kernel name encoding forbids
type ErrNameEncoding string

func (err ErrNameEncoding) Error() string {
	return "invalid interface name encoding: " + string(err)
}

// ErrClosed is returned when a handle descriptor is released twice.
var ErrClosed = errors.New("packet socket already closed")

// ResolveInterfaceIndex looks up the kernel index assigned to an interface
// name. A name that does not resolve yields index 0 and a nil error,
// mirroring if_nametoindex(3); callers must treat 0 as "not found". Names
// containing an embedded terminator fail with ErrNameEncoding.
func ResolveInterfaceIndex(name string) (uint32, error) {
	if strings.IndexByte(name, 0) != -1 {
		return 0, ErrNameEncoding(name)
	}
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return 0, nil
	}
	return uint32(ifi.Index), nil
}
