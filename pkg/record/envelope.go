package record

/*
QueryResult is the uniform envelope every pipeline operation returns.
Success and Message are always set; at most one payload field is populated
per operation.  Cause carries the typed error for programmatic inspection
and never serializes.
*/
type QueryResult struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Data     []Frame           `json:"data,omitempty"`
	Response string            `json:"response,omitempty"`
	Entities []string          `json:"entities,omitempty"`
	Record   *StructuredRecord `json:"record,omitempty"`
	Cause    error             `json:"-"`
}

// Failure builds a failure envelope from the error, carrying no payload.
func Failure(err error) QueryResult {
	return QueryResult{
		Message: err.Error(),
		Cause:   err,
	}
}

// Ok builds a success envelope with the given message.
func Ok(message string) QueryResult {
	return QueryResult{
		Success: true,
		Message: message,
	}
}
