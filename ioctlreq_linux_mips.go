//go:build linux && (mips || mipsle || mips64 || mips64le)
// +build linux
// +build mips mipsle mips64 mips64le

package rawsock

// ioctlReq widens an ioctl request code for the syscall ABI. The mips
// ports type the request parameter as a signed int, so the code is
// sign-extended through int32.
func ioctlReq(code uint32) uintptr {
	return uintptr(int32(code))
}
