package domain

// MessageResponse is the generic acknowledgement shape used by endpoints
// that return no record: logout, read/read-all, and the status and
// progress patches.
type MessageResponse struct {
	Message string `json:"message"`
}
