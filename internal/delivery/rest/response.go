package rest

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Token      string `json:"token,omitempty"`
}

// logoutResponse keeps the token key in the body with an explicit null:
// logout is advisory, the signal to the client is "discard your copy".
type logoutResponse struct {
	Success    bool    `json:"success"`
	StatusCode int     `json:"statusCode"`
	Message    string  `json:"message"`
	Token      *string `json:"token"`
}
