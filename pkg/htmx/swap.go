package htmx

// SwapStrategy defines how htmx swaps a response into its target.
type SwapStrategy string

const (
	SwapInnerHTML SwapStrategy = "innerHTML"
	SwapOuterHTML SwapStrategy = "outerHTML"
	SwapNone      SwapStrategy = "none"
)

// String returns the attribute value.
func (s SwapStrategy) String() string { return string(s) }
