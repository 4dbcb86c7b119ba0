package cpu

import "github.com/oisee/i8080-core/pkg/inst"

// hIN implements IN port: A := input_ports[port].
func hIN(c *CPU, mem Memory, op uint8) (int, error) {
	port := mem.ReadByte(c.PC + 1)
	c.A = c.ports[port]
	c.PC += 2
	return inst.Catalog[op].Cycles, nil
}

// hOUT implements OUT port: publishes the out-strobe (true, port, A). The
// host consumes it via OutStrobe/ConsumeOut.
func hOUT(c *CPU, mem Memory, op uint8) (int, error) {
	port := mem.ReadByte(c.PC + 1)
	c.outPort = port
	c.outValue = c.A
	c.outPending = true
	c.PC += 2
	return inst.Catalog[op].Cycles, nil
}
