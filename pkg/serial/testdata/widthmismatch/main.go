// Command widthmismatch must not compile: serial numbers of different widths
// cannot be compared.
package main

import (
	"fmt"

	"github.com/eigerco/serialnumber/pkg/serial"
)

func main() {
	a := serial.New[uint8](1)
	b := serial.New[uint16](2)
	fmt.Println(a.Less(b))
}
