//go:build linux
// +build linux

package rawsock

import (
	"encoding/binary"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Layout of the kernel struct ifreq: a fixed-size name field followed by a
// union carrying request-specific data. Offsets and sizes must match the
// kernel headers bit for bit or SIOCGIFFLAGS/SIOCSIFFLAGS will read and
// write the wrong bytes. All unsafe layout assumptions of this package
// live in this file.
const (
	ifNameSize  = unix.IFNAMSIZ
	ifUnionSize = 24
)

type ifReq struct {
	name  [ifNameSize]byte
	union [ifUnionSize]byte
}

// newIfReq builds a request record carrying a null-padded copy of name.
func newIfReq(name string) (*ifReq, error) {
	if strings.IndexByte(name, 0) != -1 {
		return nil, ErrNameEncoding(name)
	}
	if len(name) >= ifNameSize {
		return nil, ErrNameTooLong(name)
	}
	req := &ifReq{}
	copy(req.name[:], name)
	return req, nil
}

// hostOrder is the byte order the kernel uses for the flag word inside the
// ifreq union, probed once at startup.
var hostOrder = func() binary.ByteOrder {
	var v uint16 = 1
	if *(*byte)(unsafe.Pointer(&v)) == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}()

// ifaceFlags decodes the signed 16-bit interface flag word from the first
// two union bytes of a SIOCGIFFLAGS reply.
func ifaceFlags(order binary.ByteOrder, union []byte) int16 {
	return int16(order.Uint16(union[:2]))
}

// putIfaceFlags encodes flags into the first two union bytes of a
// SIOCSIFFLAGS request.
func putIfaceFlags(order binary.ByteOrder, union []byte, flags int16) {
	order.PutUint16(union[:2], uint16(flags))
}
