package rest

type ResponseError struct {
	Message string `json:"message"`
}

// StatusResponse is the envelope of the gift endpoint: status reports success
// and message carries either the payload or the error text.
type StatusResponse struct {
	Status  bool        `json:"status"`
	Message interface{} `json:"message"`
}
