package model

type HostKind int

const (
	FOG HostKind = iota
	CLOUD
)

const (
	defaultTxPowerW = 1.8
	defaultRxPowerW = 1.2

	// Default cubic coefficient for the fog DVFS power curve.
	defaultAlpha = 1e-4

	cloudFailureRate = 1e-7
)

// Host is a computing site in the fog-cloud continuum. Fog hosts have finite
// capacity and a non-negligible failure rate, cloud hosts are effectively
// unconstrained and nearly never fail.
type Host struct {
	Id   int
	Kind HostKind

	CpuMips  float64
	MemoryMb float64

	BandwidthInMbps  float64
	BandwidthOutMbps float64

	// Failures per hour.
	FailureRate float64

	IdlePowerW float64
	TxPowerW   float64
	RxPowerW   float64

	// DVFS power curve P(f) = Alpha*f^3 + Beta*f + Gamma, f in GHz.
	Alpha float64
	Beta  float64
	Gamma float64
}

func NewFogHost(id int, cpuMips, memoryMb, bwInMbps, bwOutMbps, failureRate, idlePowerW float64) *Host {
	return &Host{
		Id:               id,
		Kind:             FOG,
		CpuMips:          cpuMips,
		MemoryMb:         memoryMb,
		BandwidthInMbps:  bwInMbps,
		BandwidthOutMbps: bwOutMbps,
		FailureRate:      failureRate,
		IdlePowerW:       idlePowerW,
		TxPowerW:         defaultTxPowerW,
		RxPowerW:         defaultRxPowerW,
		Alpha:            defaultAlpha,
	}
}

// NewCloudHost builds an unconstrained host. The power curve coefficients stay
// zero, so cloud computation energy is not modeled; communication still is.
func NewCloudHost(id int, cpuMips, memoryMb, bwInMbps, bwOutMbps float64) *Host {
	return &Host{
		Id:               id,
		Kind:             CLOUD,
		CpuMips:          cpuMips,
		MemoryMb:         memoryMb,
		BandwidthInMbps:  bwInMbps,
		BandwidthOutMbps: bwOutMbps,
		FailureRate:      cloudFailureRate,
		TxPowerW:         defaultTxPowerW,
		RxPowerW:         defaultRxPowerW,
	}
}

// ActivePower evaluates the DVFS power curve at the given clock frequency.
func (h *Host) ActivePower(frequencyGhz float64) float64 {
	return h.Alpha*frequencyGhz*frequencyGhz*frequencyGhz + h.Beta*frequencyGhz + h.Gamma
}

func (h *Host) IsCloud() bool {
	return h.Kind == CLOUD
}
