package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// EncodeRequest is the body of POST /encode. Data is base64 in JSON.
type EncodeRequest struct {
	Data                []byte `json:"data"`
	IgnorePartialSymbol *bool  `json:"ignore_partial_symbol,omitempty"`
}

// EncodeResponse is returned by POST /encode
type EncodeResponse struct {
	Encoded string `json:"encoded"`
	Symbols int    `json:"symbols"`
}

// DecodeRequest is the body of POST /decode
type DecodeRequest struct {
	Encoded           string `json:"encoded"`
	IgnorePartialByte *bool  `json:"ignore_partial_byte,omitempty"`
}

// DecodeResponse is returned by POST /decode. Data is base64 in JSON.
type DecodeResponse struct {
	Data  []byte `json:"data"`
	Bytes int    `json:"bytes"`
}

// SymbolsResponse describes the alphabet
type SymbolsResponse struct {
	Alphabet string         `json:"alphabet"`
	Indices  map[string]int `json:"indices"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string // empty disables authentication

	// Defaults used when a request leaves the flag unset
	IgnorePartialSymbol bool
	IgnorePartialByte   bool

	// MaxInputBytes caps the raw bytes of a request or response payload; 0 means no limit
	MaxInputBytes int
}

// ICodec defines the codec operations the server exposes
type ICodec interface {
	Encode(src []byte, ignorePartialSymbol bool) string
	Decode(s string, ignorePartialByte bool) ([]byte, error)
}
