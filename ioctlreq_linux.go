//go:build linux && !mips && !mipsle && !mips64 && !mips64le
// +build linux,!mips,!mipsle,!mips64,!mips64le

package rawsock

// ioctlReq widens an ioctl request code for the syscall ABI. On these
// architectures the kernel takes the code as an unsigned long, so it
// passes through unchanged.
func ioctlReq(code uint32) uintptr {
	return uintptr(code)
}
