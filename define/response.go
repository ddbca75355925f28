package define

// Response describes what an endpoint returns. It is a closed set:
// JSONResponse, TextResponse, BinaryResponse, and EmptyResponse are the only
// implementations. A nil Response is treated as EmptyResponse.
type Response interface {
	isResponse()
}

// JSONResponse is a JSON body decoded into the schema's type.
type JSONResponse struct {
	Schema Schema
}

// TextResponse is a plain-text body returned as a string.
type TextResponse struct{}

// BinaryResponse is a raw byte body returned as []byte (audio, images,
// file downloads).
type BinaryResponse struct{}

// EmptyResponse is a response with no meaningful body; only the status is
// checked.
type EmptyResponse struct{}

func (JSONResponse) isResponse()   {}
func (TextResponse) isResponse()   {}
func (BinaryResponse) isResponse() {}
func (EmptyResponse) isResponse()  {}
