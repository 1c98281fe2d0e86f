package htmx

// Response headers.
const (
	HeaderHXRedirect = "HX-Redirect"
	HeaderHXRefresh  = "HX-Refresh"
	HeaderHXReswap   = "HX-Reswap"
	HeaderHXRetarget = "HX-Retarget"
	HeaderHXTrigger  = "HX-Trigger"
)

// Request headers.
const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXCurrentURL = "HX-Current-URL"
	HeaderHXTarget     = "HX-Target"
	// HeaderHXTriggerID carries the id of the triggering element. It shares
	// its name with the HX-Trigger response header.
	HeaderHXTriggerID   = "HX-Trigger"
	HeaderHXTriggerName = "HX-Trigger-Name"
)

// Element attributes understood by the htmx runtime.
const (
	AttrGet     = "hx-get"
	AttrPost    = "hx-post"
	AttrTrigger = "hx-trigger"
	AttrTarget  = "hx-target"
	AttrSwap    = "hx-swap"
	AttrVals    = "hx-vals"
	AttrHeaders = "hx-headers"
	AttrSync    = "hx-sync"
)
