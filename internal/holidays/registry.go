package holidays

import (
	"strings"
	"sync"
)

// Registry maps jurisdiction codes to calculators. Lookups are safe for
// concurrent use; registration normally happens once at startup.
type Registry struct {
	mu    sync.RWMutex
	calcs map[string]Calculator
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{calcs: make(map[string]Calculator)}
}

// Register adds or replaces the calculator for code. Codes are case
// insensitive and stored upper-case.
func (r *Registry) Register(code string, c Calculator) {
	code = normalizeCode(code)
	if code == "" || c == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.calcs[code]; !exists {
		r.order = append(r.order, code)
	}
	r.calcs[code] = c
}

// RegisterFunc registers a plain calculator function.
func (r *Registry) RegisterFunc(code string, f func(year int, opts Options) YearMap) {
	r.Register(code, CalculatorFunc(f))
}

// Lookup returns the calculator for code. Unknown codes report false.
func (r *Registry) Lookup(code string) (Calculator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.calcs[normalizeCode(code)]
	return c, ok
}

// Has reports whether code has a registered calculator.
func (r *Registry) Has(code string) bool {
	_, ok := r.Lookup(code)
	return ok
}

// Calculate runs the calculator for code. Unknown codes yield (nil, false),
// never an error.
func (r *Registry) Calculate(code string, year int, opts Options) (YearMap, bool) {
	c, ok := r.Lookup(code)
	if !ok {
		return nil, false
	}
	return c.Calculate(year, opts), true
}

// Codes returns the registered codes in registration order.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns the shared registry holding every built-in jurisdiction.
// Callers must not register into it; use NewRegistry for custom sets.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		builtin = NewRegistry()
		registerAll(builtin)
	})
	return builtin
}

// registerAll wires every built-in jurisdiction, grouped by region.
func registerAll(r *Registry) {
	// Americas
	r.RegisterFunc("US", UnitedStates)
	r.RegisterFunc("CA", Canada)
	r.RegisterFunc("MX", Mexico)
	r.RegisterFunc("BR", Brazil)
	r.RegisterFunc("AR", Argentina)
	r.RegisterFunc("CL", Chile)
	r.RegisterFunc("CO", Colombia)
	r.RegisterFunc("PE", Peru)

	// Europe
	r.RegisterFunc("UK", UnitedKingdom)
	r.RegisterFunc("IE", Ireland)
	r.RegisterFunc("FR", France)
	r.RegisterFunc("DE", Germany)
	r.RegisterFunc("ES", Spain)
	r.RegisterFunc("IT", Italy)
	r.RegisterFunc("PT", Portugal)
	r.RegisterFunc("NL", Netherlands)
	r.RegisterFunc("BE", Belgium)
	r.RegisterFunc("CH", Switzerland)
	r.RegisterFunc("AT", Austria)
	r.RegisterFunc("PL", Poland)
	r.RegisterFunc("CZ", Czechia)
	r.RegisterFunc("SE", Sweden)
	r.RegisterFunc("NO", Norway)
	r.RegisterFunc("DK", Denmark)
	r.RegisterFunc("FI", Finland)
	r.RegisterFunc("GR", Greece)
	r.RegisterFunc("RO", Romania)
	r.RegisterFunc("HU", Hungary)
	r.RegisterFunc("EE", Estonia)
	r.RegisterFunc("UA", Ukraine)

	// Asia
	r.RegisterFunc("KR", Korea)
	r.RegisterFunc("JP", Japan)
	r.RegisterFunc("CN", China)
	r.RegisterFunc("IN", India)
	r.RegisterFunc("SG", Singapore)
	r.RegisterFunc("PH", Philippines)

	// Oceania
	r.RegisterFunc("AU", Australia)
	r.RegisterFunc("NZ", NewZealand)

	// Middle East
	r.RegisterFunc("TR", Turkey)
	r.RegisterFunc("AE", UnitedArabEmirates)
	r.RegisterFunc("SA", SaudiArabia)

	// Africa
	r.RegisterFunc("ZA", SouthAfrica)
	r.RegisterFunc("NG", Nigeria)
	r.RegisterFunc("KE", Kenya)
	r.RegisterFunc("EG", Egypt)
}
