//go:build linux
// +build linux

// Rawsock is a small operational tool over the rawsock package: it opens an
// AF_PACKET socket on an interface, optionally turns on promiscuous mode
// and joins a PACKET_FANOUT group, then reports the resulting state.
// It needs CAP_NET_RAW, and CAP_NET_ADMIN for -promisc.
package main

import (
	"flag"
	"fmt"
	"log"

	"rawsock"
)

var (
	iface       = flag.String("i", "", "interface name to bind (required)")
	promisc     = flag.Bool("promisc", false, "set the promiscuous flag on the interface")
	fanoutGroup = flag.Int("fanout-group", -1, "fan-out group id to join (0-65535)")
	fanoutMode  = flag.String("fanout-type", "hash", "fan-out mode: hash, lb, cpu, rnd or rollover")
)

func fanoutType(mode string) (rawsock.FanoutType, error) {
	switch mode {
	case "hash":
		return rawsock.FanoutHash, nil
	case "lb":
		return rawsock.FanoutLB, nil
	case "cpu":
		return rawsock.FanoutCPU, nil
	case "rnd":
		return rawsock.FanoutRandom, nil
	case "rollover":
		return rawsock.FanoutRollover, nil
	}
	return 0, fmt.Errorf("invalid fan-out mode %s", mode)
}

func main() {
	kind := rawsock.Raw
	flag.Var(&kind, "kind", "socket kind: raw or datagram")
	flag.Parse()
	if *iface == "" {
		log.Fatal("An interface name is required. Example: `rawsock -i eth0 -promisc`")
	}

	h, err := rawsock.New(*iface, kind)
	if err != nil {
		log.Fatal(err)
	}
	defer h.Close()
	log.Printf("opened %s packet socket on %q, interface index %d\n", kind.String(), h.Name(), h.Index())

	if *promisc {
		if err := h.SetInterfaceFlag(rawsock.Promisc); err != nil {
			log.Fatal(err)
		}
		log.Printf("promiscuous mode enabled on %q\n", h.Name())
	}

	if *fanoutGroup >= 0 {
		if *fanoutGroup > 0xffff {
			log.Fatalf("fan-out group %d out of range", *fanoutGroup)
		}
		typ, err := fanoutType(*fanoutMode)
		if err != nil {
			log.Fatal(err)
		}
		if err := h.SetSocketOption(rawsock.PacketFanout, rawsock.FanoutArg(typ, uint16(*fanoutGroup))); err != nil {
			log.Fatal(err)
		}
		got := make([]byte, 4)
		if err := h.GetSocketOption(rawsock.PacketFanout, got); err != nil {
			log.Fatal(err)
		}
		log.Printf("joined fan-out group %d (%s), kernel state % x\n", *fanoutGroup, *fanoutMode, got)
	}
}
