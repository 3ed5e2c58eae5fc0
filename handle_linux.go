//go:build linux
// +build linux

package rawsock

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Promisc is the interface flag bit for promiscuous mode, for use with
// SetInterfaceFlag.
const Promisc uint16 = unix.IFF_PROMISC

// PacketFanout is the packet-socket option id for joining a fan-out group.
const PacketFanout = unix.PACKET_FANOUT

// FanoutType selects the kernel load-balancing mode of a fan-out group.
type FanoutType uint16

// Fan-out modes understood by PACKET_FANOUT.
const (
	FanoutHash     FanoutType = unix.PACKET_FANOUT_HASH
	FanoutLB       FanoutType = unix.PACKET_FANOUT_LB
	FanoutCPU      FanoutType = unix.PACKET_FANOUT_CPU
	FanoutRollover FanoutType = unix.PACKET_FANOUT_ROLLOVER
	FanoutRandom   FanoutType = unix.PACKET_FANOUT_RND
)

// FanoutArg encodes the PACKET_FANOUT option value that joins group under
// the given fan-out mode, in the byte order the kernel reads it in. It
// only builds the value; distributing frames across the group is the
// kernel's business.
func FanoutArg(typ FanoutType, group uint16) []byte {
	arg := make([]byte, 4)
	hostOrder.PutUint32(arg, uint32(typ)<<16|uint32(group))
	return arg
}

// Handle owns one AF_PACKET descriptor bound at construction to a named
// interface. Ownership is exclusive: nobody else may duplicate or close
// the descriptor, and Close releases it exactly once.
type Handle struct {
	fd     int
	name   string
	index  uint32
	kind   SocketKind
	closed bool
	sys    sysops
}

// New opens an AF_PACKET socket of the given kind with protocol ETH_P_ALL
// in network byte order and resolves name to its kernel interface index.
// The index is resolved once and never re-validated; if the interface
// disappears later, flag and option calls fail with the OS error instead
// of being skipped. Opening the socket requires CAP_NET_RAW.
func New(name string, kind SocketKind) (*Handle, error) {
	return newHandle(name, kind, linuxSys{})
}

func newHandle(name string, kind SocketKind, sys sysops) (*Handle, error) {
	// Validate the name before touching the OS so a bad name never
	// costs a descriptor.
	if _, err := newIfReq(name); err != nil {
		return nil, err
	}
	typ, err := kind.sockType()
	if err != nil {
		return nil, err
	}
	fd, err := sys.socket(unix.AF_PACKET, typ, int(htons(unix.ETH_P_ALL)))
	if err != nil {
		return nil, fmt.Errorf("packet socket error: %w, interface: %q", err, name)
	}
	index := sys.interfaceIndex(name)
	if index == 0 {
		sys.close(fd)
		return nil, fmt.Errorf("interface index error: %w, interface: %q", unix.ENODEV, name)
	}
	return &Handle{fd: fd, name: name, index: index, kind: kind, sys: sys}, nil
}

func (k SocketKind) sockType() (int, error) {
	switch k {
	case Raw:
		return unix.SOCK_RAW, nil
	case Datagram:
		return unix.SOCK_DGRAM, nil
	}
	return 0, fmt.Errorf("invalid socket kind %d", int(k))
}

// Name returns the interface name the handle was constructed with.
func (h *Handle) Name() string { return h.name }

// Index returns the interface index resolved at construction.
func (h *Handle) Index() uint32 { return h.index }

// Kind returns the socket kind requested at construction.
func (h *Handle) Kind() SocketKind { return h.kind }

// Fd returns the underlying descriptor. The handle keeps ownership; the
// descriptor must not be closed or duplicated by the caller.
func (h *Handle) Fd() int { return h.fd }

// Close releases the descriptor. A second Close reports ErrClosed and
// leaves the descriptor number alone, so a stale handle can never close a
// descriptor the OS has reused elsewhere.
func (h *Handle) Close() error {
	if h.closed {
		return ErrClosed
	}
	h.closed = true
	return h.sys.close(h.fd)
}

// getIfaceFlags reads the current interface flag word via SIOCGIFFLAGS.
func (h *Handle) getIfaceFlags() (int16, error) {
	req, err := newIfReq(h.name)
	if err != nil {
		return 0, err
	}
	if err := h.sys.ioctl(h.fd, unix.SIOCGIFFLAGS, unsafe.Pointer(req)); err != nil {
		return 0, fmt.Errorf("get interface flags error: %w, interface: %q", err, h.name)
	}
	return ifaceFlags(hostOrder, req.union[:]), nil
}

// SetInterfaceFlag ORs flag into the interface flag word via
// SIOCGIFFLAGS/SIOCSIFFLAGS. The read-modify-write is not atomic against
// concurrent flag changes on the same interface; callers needing that must
// serialize externally.
func (h *Handle) SetInterfaceFlag(flag uint16) error {
	flags, err := h.getIfaceFlags()
	if err != nil {
		return err
	}
	req, err := newIfReq(h.name)
	if err != nil {
		return err
	}
	putIfaceFlags(hostOrder, req.union[:], flags|int16(flag))
	if err := h.sys.ioctl(h.fd, unix.SIOCSIFFLAGS, unsafe.Pointer(req)); err != nil {
		return fmt.Errorf("set interface flags error: %w, interface: %q", err, h.name)
	}
	return nil
}

// SetSocketOption sets a SOL_PACKET option to the raw bytes of value,
// passing exactly len(value) to the kernel. The caller owns the binary
// layout contract for opt; no validation happens here beyond the length.
func (h *Handle) SetSocketOption(opt int, value []byte) error {
	if len(value) == 0 {
		return fmt.Errorf("socket option %d error: empty value, interface: %q", opt, h.name)
	}
	if err := h.sys.setsockopt(h.fd, unix.SOL_PACKET, opt, unsafe.Pointer(&value[0]), uint32(len(value))); err != nil {
		return fmt.Errorf("set socket option %d error: %w, interface: %q", opt, err, h.name)
	}
	return nil
}

// GetSocketOption reads a SOL_PACKET option into value. len(value) must be
// the true size of the option's data; a kernel length that differs is
// reported as an error instead of being silently truncated.
func (h *Handle) GetSocketOption(opt int, value []byte) error {
	if len(value) == 0 {
		return fmt.Errorf("socket option %d error: empty value, interface: %q", opt, h.name)
	}
	length := uint32(len(value))
	if err := h.sys.getsockopt(h.fd, unix.SOL_PACKET, opt, unsafe.Pointer(&value[0]), &length); err != nil {
		return fmt.Errorf("get socket option %d error: %w, interface: %q", opt, err, h.name)
	}
	if int(length) != len(value) {
		return fmt.Errorf("get socket option %d error: kernel reported %d bytes, want %d, interface: %q",
			opt, length, len(value), h.name)
	}
	return nil
}
