package replacement

import "fmt"

type constError string

// ErrInvalidGeometry may be returned from the policy constructors.
const ErrInvalidGeometry = constError("invalid geometry")

// Minimum cache geometry accepted by the constructors.
const (
	minimumSets = 1
	minimumWays = 1
)

func (errStr constError) Error() string { return string(errStr) }

func geometryError(sets, ways int) error {
	return fmt.Errorf(
		"%w: sets and ways must be >=%d but %dx%d was requested",
		ErrInvalidGeometry, minimumSets, sets, ways)
}
