package mol

import "strings"

// Element is an atomic number code. The zero value is Unknown.
type Element uint8

const (
	Unknown Element = 0
	H       Element = 1
	C       Element = 6
	N       Element = 7
	O       Element = 8
	F       Element = 9
	Na      Element = 11
	Mg      Element = 12
	P       Element = 15
	S       Element = 16
	Cl      Element = 17
	K       Element = 19
	Ca      Element = 20
	Fe      Element = 26
	Zn      Element = 30
	Se      Element = 34
	Br      Element = 35
	I       Element = 53
)

var symbolToElement = map[string]Element{
	"H": H, "C": C, "N": N, "O": O, "F": F,
	"NA": Na, "MG": Mg, "P": P, "S": S, "CL": Cl,
	"K": K, "CA": Ca, "FE": Fe, "ZN": Zn, "SE": Se,
	"BR": Br, "I": I,
}

var elementToSymbol = map[Element]string{
	H: "H", C: "C", N: "N", O: "O", F: "F",
	Na: "Na", Mg: "Mg", P: "P", S: "S", Cl: "Cl",
	K: "K", Ca: "Ca", Fe: "Fe", Zn: "Zn", Se: "Se",
	Br: "Br", I: "I",
}

// ElementFromSymbol resolves a case-insensitive element symbol.
// Unrecognized symbols resolve to Unknown.
func ElementFromSymbol(sym string) Element {
	return symbolToElement[strings.ToUpper(strings.TrimSpace(sym))]
}

// Symbol returns the canonical symbol, or "?" for Unknown codes.
func (e Element) Symbol() string {
	if s, ok := elementToSymbol[e]; ok {
		return s
	}
	return "?"
}
