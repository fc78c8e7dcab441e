package clocks

// The SN76477 in this machine is clocked from the system's master crystal.
// All of the chip's internal timing is expressed as a number of master ticks
const Master = 24576000 // 24.576MHz

// The slow side of the chip (noise, one-shot, envelope) is paced by a strobe
// derived from a 9-bit counter running at the master rate. The strobe fires
// once every 512 ticks
const (
	StrobeDivisor = 512
	Strobe        = Master / StrobeDivisor // 48KHz
)
