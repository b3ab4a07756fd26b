package contact

// SubmitResponse is the wire shape the published form client consumes.
// ReceiptOK is present only on a successful relay; Error only on failure.
type SubmitResponse struct {
	OK        bool   `json:"ok"`
	ReceiptOK *bool  `json:"receiptOk,omitempty"`
	Error     string `json:"error,omitempty"`
}

// LivenessResponse is returned for GET requests to the contact endpoint
type LivenessResponse struct {
	OK     bool   `json:"ok"`
	Marker string `json:"marker,omitempty"`
}

// Success returns the bare success response (honeypot short-circuit)
func Success() SubmitResponse {
	return SubmitResponse{OK: true}
}

// SuccessWithReceipt returns a success response carrying the receipt flag
func SuccessWithReceipt(receiptOK bool) SubmitResponse {
	return SubmitResponse{OK: true, ReceiptOK: &receiptOK}
}

// Failure returns an error response
func Failure(message string) SubmitResponse {
	return SubmitResponse{OK: false, Error: message}
}
