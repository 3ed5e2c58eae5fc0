//go:build !linux
// +build !linux

package main

import "log"

func main() {
	log.Fatal("rawsock requires linux AF_PACKET support")
}
