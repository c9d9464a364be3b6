package platform

type PopCountStrategy uint8

const (
	PopCountHardware PopCountStrategy = iota
	PopCountSWAR
	PopCountTable
	PopCountNaive
)

// PopCountStrategies lists every population count strategy.
var PopCountStrategies = []PopCountStrategy{PopCountHardware, PopCountSWAR, PopCountTable, PopCountNaive}

func (s PopCountStrategy) String() string {
	switch s {
	case PopCountHardware:
		return "hardware"
	case PopCountSWAR:
		return "swar"
	case PopCountTable:
		return "table"
	case PopCountNaive:
		return "naive"
	default:
		return ""
	}
}

type BitScanStrategy uint8

const (
	BitScanHardware BitScanStrategy = iota
	BitScanDeBruijn
	BitScanSoftware
)

// BitScanStrategies lists every bit scan strategy.
var BitScanStrategies = []BitScanStrategy{BitScanHardware, BitScanDeBruijn, BitScanSoftware}

func (s BitScanStrategy) String() string {
	switch s {
	case BitScanHardware:
		return "hardware"
	case BitScanDeBruijn:
		return "debruijn"
	case BitScanSoftware:
		return "software"
	default:
		return ""
	}
}

type PositionsStrategy uint8

const (
	PositionsTable PositionsStrategy = iota
	PositionsDeBruijn
	PositionsOptimized
)

// PositionsStrategies lists every position enumeration strategy.
var PositionsStrategies = []PositionsStrategy{PositionsTable, PositionsDeBruijn, PositionsOptimized}

func (s PositionsStrategy) String() string {
	switch s {
	case PositionsTable:
		return "table"
	case PositionsDeBruijn:
		return "debruijn"
	case PositionsOptimized:
		return "optimized"
	default:
		return ""
	}
}

func (s PopCountStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s BitScanStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s PositionsStrategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
