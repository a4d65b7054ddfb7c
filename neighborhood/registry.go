package neighborhood

import (
	"fmt"

	"github.com/upmsp/upmsp/problem"
	"github.com/upmsp/upmsp/rngsrc"
)

// Names lists every registered move, in the order the heuristic driver
// cycles through them when no explicit subset is configured.
var Names = []string{
	"shift", "swap", "switch", "simpleswap",
	"smartshift", "smartswap", "smartswitch", "smartsimpleswap",
}

// IsValidName reports whether name is a registered move.
func IsValidName(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// New creates a Move by name. Panics on unrecognized names, a typo in a
// configured move list is a programmer error, not a runtime condition to
// recover from.
func New(name string, p problem.Problem, rebuild Rebuilder, rng *rngsrc.Source) Move {
	if !IsValidName(name) {
		panic(fmt.Sprintf("neighborhood: unknown move %q", name))
	}
	switch name {
	case "shift":
		return newShift(p, rebuild, rng)
	case "swap":
		return newSwap(p, rebuild, rng)
	case "switch":
		return newSwitch(p, rebuild, rng)
	case "simpleswap":
		return newSimpleSwap(p, rebuild, rng)
	case "smartshift":
		return newSmartShift(p, rebuild, rng)
	case "smartswap":
		return newSmartSwap(p, rebuild, rng)
	case "smartswitch":
		return newSmartSwitch(p, rebuild, rng)
	case "smartsimpleswap":
		return newSmartSimpleSwap(p, rebuild, rng)
	default:
		panic(fmt.Sprintf("neighborhood: unhandled move %q", name))
	}
}
