package types

// Revision is an ordered protocol version tag. Only the relative order
// matters to the engine: it gates which instructions are defined.
// REVERT is defined from Byzantium on.
type Revision int

const (
	Frontier Revision = iota
	Homestead
	TangerineWhistle
	SpuriousDragon
	Byzantium
	Constantinople
	Petersburg
	Istanbul
	Berlin
	London
	Paris
	Shanghai
	Cancun

	// MaxRevision is the newest revision this engine knows about.
	MaxRevision = Cancun
)

var revisionNames = [...]string{
	Frontier:         "Frontier",
	Homestead:        "Homestead",
	TangerineWhistle: "Tangerine Whistle",
	SpuriousDragon:   "Spurious Dragon",
	Byzantium:        "Byzantium",
	Constantinople:   "Constantinople",
	Petersburg:       "Petersburg",
	Istanbul:         "Istanbul",
	Berlin:           "Berlin",
	London:           "London",
	Paris:            "Paris",
	Shanghai:         "Shanghai",
	Cancun:           "Cancun",
}

func (r Revision) String() string {
	if r < 0 || int(r) >= len(revisionNames) {
		return "unknown"
	}
	return revisionNames[r]
}
