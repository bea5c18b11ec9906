/*
Package serial implements RFC 1982 serial number arithmetic on fixed width
unsigned integers.

A serial number is a counter that is expected to wrap. Ordering is therefore
defined by modular distance rather than by numeric value: in an 8-bit space
250 comes before 10, because counting up from 250 reaches 10 after 16 steps
while counting up from 10 needs 240 steps to reach 250.

	a := serial.New[uint8](250)
	b := serial.New[uint8](10)
	a.Less(b) // true

Supported widths are uint8, uint16, uint32, uint64 and uint128.Uint128 from
lukechampine.com/uint128. Any other type argument is rejected by the compiler,
and so is comparing numbers of different widths:

	serial.New[uint8](1).Less(serial.New[uint16](2)) // does not compile

When two values are exactly 2^(W-1) apart the RFC leaves their order
undefined. This package reports such a pair as neither less nor greater, and
also as neither less-or-equal nor greater-or-equal. Only Equal and NotEqual
behave normally, so !a.Less(b) && !a.Greater(b) does not imply a.Equal(b).
Compare returns ok=false for these pairs.

The only arithmetic provided is increment by one. RFC 1982 also defines
addition of values up to 2^(W-1)-1; callers that need it add to Value() and
build a new Number, keeping the addend within that bound themselves:

	s = serial.New(s.Value() + 23)

Plain numbers of any Go integer or float type can be compared against a
Number. They are first converted with Truncate, which keeps the low W bits of
the two's complement representation, so an 8-bit serial number equals 266
when it holds 10. Use Exact to reject such values instead.
*/
package serial
