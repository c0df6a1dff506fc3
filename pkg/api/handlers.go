package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ssargent/wibblr/pkg/base32"
	"go.uber.org/zap"
)

// Server holds the API server state
type Server struct {
	codec   ICodec
	config  ServerConfig
	metrics *Metrics
	logger  *zap.Logger
}

// NewServer creates a new API server
func NewServer(codec ICodec, config ServerConfig, metrics *Metrics, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		codec:   codec,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	APIResponse
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleSymbols godoc
//
//	@Summary		List the alphabet
//	@Description	Get the 32 symbols in index order and the index of each symbol
//	@Tags			codec
//	@Produce		json
//	@Success		200	{object}	SymbolsResponse
//	@Router			/symbols [get]
//	@Security		ApiKeyAuth
func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	indices := make(map[string]int, len(base32.Symbols))
	for i, symbol := range base32.Symbols {
		indices[string(symbol)] = i
	}
	sendSuccess(w, SymbolsResponse{
		Alphabet: base32.Alphabet,
		Indices:  indices,
	})
}

// handleEncode godoc
//
//	@Summary		Encode bytes
//	@Description	Encode base64-wrapped bytes into base-32 symbols
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			body	body		EncodeRequest	true	"Bytes to encode"
//	@Success		200		{object}	EncodeResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		413		{object}	APIResponse
//	@Router			/encode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest
	if status, err := s.readJSON(w, r, &req); err != nil {
		s.metrics.RecordCodecOperation("encode", false, 0)
		sendError(w, err.Error(), status)
		return
	}

	if s.tooLarge(len(req.Data)) {
		s.metrics.RecordCodecOperation("encode", false, 0)
		sendError(w, fmt.Sprintf("Input exceeds %d bytes", s.config.MaxInputBytes), http.StatusRequestEntityTooLarge)
		return
	}

	ignorePartial := s.config.IgnorePartialSymbol
	if req.IgnorePartialSymbol != nil {
		ignorePartial = *req.IgnorePartialSymbol
	}

	encoded := s.codec.Encode(req.Data, ignorePartial)
	s.metrics.RecordCodecOperation("encode", true, len(req.Data))

	s.logger.Debug("encoded",
		zap.Int("bytes", len(req.Data)),
		zap.Int("symbols", len(encoded)),
		zap.Bool("ignore_partial_symbol", ignorePartial),
		zap.String("request_id", RequestID(r.Context())),
	)
	sendSuccess(w, EncodeResponse{Encoded: encoded, Symbols: len(encoded)})
}

// handleDecode godoc
//
//	@Summary		Decode symbols
//	@Description	Decode a base-32 string into base64-wrapped bytes
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			body	body		DecodeRequest	true	"Symbols to decode"
//	@Success		200		{object}	DecodeResponse
//	@Failure		400		{object}	APIResponse
//	@Failure		413		{object}	APIResponse
//	@Router			/decode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if status, err := s.readJSON(w, r, &req); err != nil {
		s.metrics.RecordCodecOperation("decode", false, 0)
		sendError(w, err.Error(), status)
		return
	}

	ignorePartial := s.config.IgnorePartialByte
	if req.IgnorePartialByte != nil {
		ignorePartial = *req.IgnorePartialByte
	}

	if s.tooLarge(base32.DecodedLen(len(req.Encoded), ignorePartial)) {
		s.metrics.RecordCodecOperation("decode", false, 0)
		sendError(w, fmt.Sprintf("Output exceeds %d bytes", s.config.MaxInputBytes), http.StatusRequestEntityTooLarge)
		return
	}

	data, err := s.codec.Decode(req.Encoded, ignorePartial)
	if err != nil {
		s.metrics.RecordCodecOperation("decode", false, 0)
		if errors.Is(err, base32.ErrInvalidSymbol) {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		sendError(w, fmt.Sprintf("Failed to decode: %v", err), http.StatusInternalServerError)
		return
	}
	s.metrics.RecordCodecOperation("decode", true, len(data))

	s.logger.Debug("decoded",
		zap.Int("symbols", len(req.Encoded)),
		zap.Int("bytes", len(data)),
		zap.Bool("ignore_partial_byte", ignorePartial),
		zap.String("request_id", RequestID(r.Context())),
	)
	sendSuccess(w, DecodeResponse{Data: data, Bytes: len(data)})
}

// readJSON decodes the request body into v, bounded by the configured input cap
func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v interface{}) (int, error) {
	body := r.Body
	if limit := s.bodyLimit(); limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}

	if err := json.NewDecoder(body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("Request body exceeds %d bytes", maxErr.Limit)
		}
		return http.StatusBadRequest, errors.New("Invalid JSON in request body")
	}
	return http.StatusOK, nil
}

// bodyLimit leaves room for base64 expansion and the JSON envelope
func (s *Server) bodyLimit() int64 {
	if s.config.MaxInputBytes <= 0 {
		return 0
	}
	return int64(s.config.MaxInputBytes)*2 + 1024
}

func (s *Server) tooLarge(n int) bool {
	return s.config.MaxInputBytes > 0 && n > s.config.MaxInputBytes
}
