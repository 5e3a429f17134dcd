package shift

import (
	"fmt"
	"strings"
)

// Methodology selects the model behind the objective.
type Methodology string

const (
	// Logit applies Z as a uniform log-odds shock.
	Logit Methodology = "logit"

	// Vasicek applies Z as the common factor of a single-factor model.
	Vasicek Methodology = "vasicek"
)

// Default search brackets per methodology.
const (
	DefaultLogitLower   = -10.0
	DefaultLogitUpper   = 10.0
	DefaultVasicekLower = -5.0
	DefaultVasicekUpper = 5.0
)

// Methodologies lists every supported tag in a stable order.
func Methodologies() []Methodology { return []Methodology{Logit, Vasicek} }

// ParseMethodology maps a case-insensitive tag to a Methodology.
// Errors: ErrUnknownMethodology.
func ParseMethodology(s string) (Methodology, error) {
	switch m := Methodology(strings.ToLower(strings.TrimSpace(s))); m {
	case Logit, Vasicek:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethodology, s)
	}
}

// Valid reports whether m is a supported tag.
func (m Methodology) Valid() bool { return m == Logit || m == Vasicek }

// String implements fmt.Stringer.
func (m Methodology) String() string { return string(m) }

// DefaultBounds returns the default search bracket for m.
// Unknown tags get the logit bracket.
func (m Methodology) DefaultBounds() (lower, upper float64) {
	if m == Vasicek {
		return DefaultVasicekLower, DefaultVasicekUpper
	}

	return DefaultLogitLower, DefaultLogitUpper
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Methodology) UnmarshalText(text []byte) error {
	parsed, err := ParseMethodology(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
