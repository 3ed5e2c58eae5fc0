//go:build !linux
// +build !linux

package rawsock

import "errors"

// Handle is only functional on linux.
type Handle struct{}

// New returns an error: AF_PACKET sockets are only available on linux.
func New(_ string, _ SocketKind) (*Handle, error) {
	return nil, errors.New("packet socket is only available on linux")
}
