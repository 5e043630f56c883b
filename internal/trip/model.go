// README: Trip request model (inbound payload of POST /api/plan-trip).
package trip

// Request is the trip-planning payload. Fields are not validated; missing values
// decode to their zero values and null optional fields decode to "".
type Request struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Theme       string `json:"theme,omitempty"`
	Pace        string `json:"pace,omitempty"`
}
