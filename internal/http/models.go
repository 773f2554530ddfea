package http

// SummarizeRequest is the payload accepted by the summarize endpoint.
type SummarizeRequest struct {
	CIDRs []string `json:"cidrs" example:"10.0.0.0/24,10.0.1.0/24"`
}

// BatchRequest is the payload accepted by the batch endpoint.
type BatchRequest struct {
	CIDRs []string `json:"cidrs" example:"192.168.1.0/24,2001:db8::/64"`
}

// VersionResponse reports the build identity.
type VersionResponse struct {
	Name    string `json:"name" example:"ipcalc"`
	Version string `json:"version" example:"dev"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid cidr format: not-a-cidr"`
}
