//go:build linux
// +build linux

package rawsock

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"unsafe"
)

func TestIfReqLayout(t *testing.T) {
	// struct ifreq is 16 name bytes followed by a 24-byte union on
	// 64-bit Linux. The kernel reads these offsets, not our field names.
	if s := unsafe.Sizeof(ifReq{}); s != 40 {
		t.Errorf("expected ifReq size to be %d, got %d", 40, s)
	}
	if o := unsafe.Offsetof(ifReq{}.union); o != 16 {
		t.Errorf("expected union offset to be %d, got %d", 16, o)
	}
	if o := unsafe.Offsetof(ifReq{}.name); o != 0 {
		t.Errorf("expected name offset to be %d, got %d", 0, o)
	}
}

func TestNewIfReqPadsName(t *testing.T) {
	req, err := newIfReq("eth0")
	if err != nil {
		t.Errorf("expected error to be nil, got %q", err)
		return
	}
	if string(req.name[:4]) != "eth0" {
		t.Errorf("expected name to be %q, got %q", "eth0", req.name[:4])
	}
	for i := 4; i < ifNameSize; i++ {
		if req.name[i] != 0 {
			t.Errorf("expected name byte %d to be null padding, got %#x", i, req.name[i])
		}
	}
	for i, b := range req.union {
		if b != 0 {
			t.Errorf("expected union byte %d to be zero, got %#x", i, b)
		}
	}
}

func TestNewIfReqRejectsLongName(t *testing.T) {
	name := strings.Repeat("a", ifNameSize)
	if _, err := newIfReq(name); !errors.Is(err, ErrNameTooLong(name)) {
		t.Errorf("should fail with %q, got %q", ErrNameTooLong(name), err)
	}
	// 15 bytes still fits: the 16th is the terminator.
	if _, err := newIfReq(strings.Repeat("a", ifNameSize-1)); err != nil {
		t.Errorf("expected error to be nil, got %q", err)
	}
}

func TestNewIfReqRejectsEmbeddedNul(t *testing.T) {
	name := "eth\x000"
	if _, err := newIfReq(name); !errors.Is(err, ErrNameEncoding(name)) {
		t.Errorf("should fail with %q, got %q", ErrNameEncoding(name), err)
	}
}

func TestIfaceFlagsBothOrders(t *testing.T) {
	for _, flags := range []int16{0, 1, 0x100, 0x1143, 0x7fff, -1, -0x8000} {
		for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
			union := make([]byte, ifUnionSize)
			putIfaceFlags(order, union, flags)
			if got := ifaceFlags(order, union); got != flags {
				t.Errorf("%v: expected flags %#x, got %#x", order, flags, got)
			}
			for i := 2; i < ifUnionSize; i++ {
				if union[i] != 0 {
					t.Errorf("%v: flags %#x touched union byte %d", order, flags, i)
				}
			}
		}
	}
}

func TestPutIfaceFlagsByteLayout(t *testing.T) {
	union := make([]byte, ifUnionSize)
	putIfaceFlags(binary.BigEndian, union, 0x0100)
	if union[0] != 0x01 || union[1] != 0x00 {
		t.Errorf("expected big-endian bytes [0x01 0x00], got [%#x %#x]", union[0], union[1])
	}
	putIfaceFlags(binary.LittleEndian, union, 0x0100)
	if union[0] != 0x00 || union[1] != 0x01 {
		t.Errorf("expected little-endian bytes [0x00 0x01], got [%#x %#x]", union[0], union[1])
	}
}

func TestHostOrderRoundTripsNativeShort(t *testing.T) {
	// hostOrder must agree with how the CPU lays out a 16-bit store,
	// since the kernel reads the flag word natively.
	v := int16(0x0102)
	native := *(*[2]byte)(unsafe.Pointer(&v))
	union := make([]byte, ifUnionSize)
	putIfaceFlags(hostOrder, union, v)
	if union[0] != native[0] || union[1] != native[1] {
		t.Errorf("expected native bytes [%#x %#x], got [%#x %#x]",
			native[0], native[1], union[0], union[1])
	}
}
