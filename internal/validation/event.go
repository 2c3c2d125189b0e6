package validation

// Event is the transport-neutral view of an inbound API request.
type Event struct {
	Method                string
	Resource              string
	RequestID             string
	PathParameters        map[string]string
	QueryStringParameters map[string]string
	Body                  string
	IsBase64Encoded       bool
}

// PathParam returns a path parameter or "" when absent.
func (e Event) PathParam(name string) string {
	return e.PathParameters[name]
}

// QueryParam returns a query string parameter or "" when absent.
func (e Event) QueryParam(name string) string {
	return e.QueryStringParameters[name]
}
