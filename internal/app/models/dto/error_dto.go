package dto

// ErrorResponse is the inline error body used for missing rows and
// missing request fields.
type ErrorResponse struct {
	Error  string   `json:"error" example:"User not found"`
	Fields []string `json:"fields,omitempty"`
}

// MissingData is the message sent when required body fields are absent.
const MissingData = "Missing data"

// NewNotFoundResponse builds the body for an absent entity.
func NewNotFoundResponse(entity string) ErrorResponse {
	return ErrorResponse{Error: entity + " not found"}
}

// NewMissingDataResponse names the JSON keys that were required but absent.
func NewMissingDataResponse(fields []string) ErrorResponse {
	return ErrorResponse{Error: MissingData, Fields: fields}
}
