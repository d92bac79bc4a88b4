package causal

import "errors"

// Sentinel errors for variable and relationship construction.
var (
	// ErrEmptyName indicates a variable with an empty name.
	ErrEmptyName = errors.New("causal: variable name is empty")

	// ErrNegativeUncertainty indicates a negative uncertainty value.
	ErrNegativeUncertainty = errors.New("causal: uncertainty must be non-negative")

	// ErrValueOutOfBounds indicates an initial value outside the declared bounds.
	ErrValueOutOfBounds = errors.New("causal: current value outside declared bounds")

	// ErrBadBounds indicates a lower bound above the upper bound.
	ErrBadBounds = errors.New("causal: lower bound exceeds upper bound")

	// ErrStrengthRange indicates a relationship strength outside [-1, 1].
	ErrStrengthRange = errors.New("causal: strength must be in [-1, 1]")

	// ErrConfidenceRange indicates a relationship confidence outside [0, 1].
	ErrConfidenceRange = errors.New("causal: confidence must be in [0, 1]")

	// ErrNegativeLag indicates a negative lag period count.
	ErrNegativeLag = errors.New("causal: lag periods must be non-negative")
)

// Sentinel errors for graph mutation and queries.
var (
	// ErrNilVariable indicates a nil *EconomicVariable was passed.
	ErrNilVariable = errors.New("causal: variable is nil")

	// ErrNilRelationship indicates a nil *CausalRelationship was passed.
	ErrNilRelationship = errors.New("causal: relationship is nil")

	// ErrDuplicateVariable indicates the variable name is already registered.
	ErrDuplicateVariable = errors.New("causal: variable already exists")

	// ErrUnknownVariable indicates an operation referenced an absent variable.
	ErrUnknownVariable = errors.New("causal: variable not found")

	// ErrSelfLoop indicates a relationship whose source equals its target.
	ErrSelfLoop = errors.New("causal: self-loops are not allowed")

	// ErrCycle indicates an insertion that would make the graph cyclic.
	ErrCycle = errors.New("causal: relationship would create a cycle")

	// ErrDuplicateRelationship indicates an edge already exists for the ordered pair.
	ErrDuplicateRelationship = errors.New("causal: relationship already exists")
)
