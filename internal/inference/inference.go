// Package inference derives transaction direction and responsible-department
// suggestions from a normalized operation code or a category selection.
package inference

import (
	"regexp"

	"rpires/nf-control/internal/models"
	"rpires/nf-control/internal/recerror"
)

var codeRe = regexp.MustCompile(`^(\d)\.?\d{3}$`)

// Determination is the result of a direction inference. It distinguishes a
// determined direction from "no determination possible" without resorting to
// sentinel strings.
type Determination struct {
	Direction  models.Direction
	Determined bool
}

// Determined wraps a direction in a positive determination.
func Determined(d models.Direction) Determination {
	return Determination{Direction: d, Determined: true}
}

// Undetermined is the zero determination.
var Undetermined = Determination{}

// InferDirection infers the transaction direction from a normalized operation
// code. Leading digit 1 or 2 means inbound, 5 or 6 outbound; any other
// leading digit, or a code that does not match the D.DDD shape, yields no
// determination.
func InferDirection(code string) Determination {
	m := codeRe.FindStringSubmatch(code)
	if m == nil {
		return Undetermined
	}
	switch m[1] {
	case "1", "2":
		return Determined(models.DirectionInbound)
	case "5", "6":
		return Determined(models.DirectionOutbound)
	}
	return Undetermined
}

// ResolveDirection combines an explicit user choice with an inferred
// determination. The explicit choice always wins; if it contradicts the
// inference the returned warning is non-empty, but the choice is still
// accepted. With no explicit choice the inference is used. If neither is
// available the direction is unresolved.
func ResolveDirection(explicit string, inferred Determination) (models.Direction, string, error) {
	if explicit != "" {
		warning := ""
		if inferred.Determined && models.Direction(explicit) != inferred.Direction {
			warning = "o tipo selecionado diverge do CFOP; verifique a consistência"
		}
		return models.Direction(explicit), warning, nil
	}
	if inferred.Determined {
		return inferred.Direction, "", nil
	}
	return "", "", &recerror.MissingFieldError{Field: "direction"}
}
