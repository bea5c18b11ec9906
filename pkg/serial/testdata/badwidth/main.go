// Command badwidth must not compile: only uint8, uint16, uint32, uint64 and
// uint128.Uint128 are serial number widths.
package main

import (
	"fmt"

	"github.com/eigerco/serialnumber/pkg/serial"
)

type seq uint8

func main() {
	fmt.Println(serial.New[int](1))
	fmt.Println(serial.New[float64](1))
	fmt.Println(serial.New[seq](1))
}
