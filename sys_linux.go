//go:build linux
// +build linux

package rawsock

import (
	"net"
	"unsafe"

	"golang.org/x/sys/unix"
)

// sysops is the slice of the OS surface this package touches. The
// indirection exists so the flag and option contracts can be tested
// without CAP_NET_RAW.
type sysops interface {
	socket(domain, typ, proto int) (int, error)
	close(fd int) error
	ioctl(fd int, req uint32, arg unsafe.Pointer) error
	setsockopt(fd, level, opt int, value unsafe.Pointer, length uint32) error
	getsockopt(fd, level, opt int, value unsafe.Pointer, length *uint32) error
	interfaceIndex(name string) uint32
}

// linuxSys issues the real system calls.
type linuxSys struct{}

func (linuxSys) socket(domain, typ, proto int) (int, error) {
	return unix.Socket(domain, typ, proto)
}

func (linuxSys) close(fd int) error {
	return unix.Close(fd)
}

func (linuxSys) ioctl(fd int, req uint32, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), ioctlReq(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func (linuxSys) setsockopt(fd, level, opt int, value unsafe.Pointer, length uint32) error {
	_, _, errno := unix.Syscall6(unix.SYS_SETSOCKOPT,
		uintptr(fd), uintptr(level), uintptr(opt),
		uintptr(value), uintptr(length), 0)
	if errno != 0 {
		return errno
	}
	return nil
}

func (linuxSys) getsockopt(fd, level, opt int, value unsafe.Pointer, length *uint32) error {
	_, _, errno := unix.Syscall6(unix.SYS_GETSOCKOPT,
		uintptr(fd), uintptr(level), uintptr(opt),
		uintptr(value), uintptr(unsafe.Pointer(length)), 0)
	if errno != 0 {
		return errno
	}
	return nil
}

// interfaceIndex mirrors if_nametoindex: 0 means not found, no error set.
func (linuxSys) interfaceIndex(name string) uint32 {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return 0
	}
	return uint32(ifi.Index)
}

// htons converts a short (uint16) from host-to-network byte order.
func htons(i uint16) uint16 {
	return i<<8 | i>>8
}
