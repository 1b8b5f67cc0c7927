// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cipher-backend/analysis"
	"cipher-backend/crypto"
	"cipher-backend/logger"
	"cipher-backend/models"
)

const Version = "1.0.0"

type CipherHandler struct {
	maxTextLength int
	log           zerolog.Logger
}

func NewCipherHandler(maxTextLength int) *CipherHandler {
	return &CipherHandler{
		maxTextLength: maxTextLength,
		log:           logger.WithComponent("cipher"),
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": Version,
	})
}

func (h *CipherHandler) ListAlgorithms(c *gin.Context) {
	algorithms := crypto.Algorithms()
	infos := make([]models.AlgorithmInfo, 0, len(algorithms))
	for _, alg := range algorithms {
		infos = append(infos, models.AlgorithmInfo{
			ID:          int(alg),
			Name:        alg.String(),
			DisplayName: alg.DisplayName(),
			KeyKind:     string(alg.KeyKind()),
			ExampleKey:  alg.ExampleKey(),
		})
	}
	c.JSON(http.StatusOK, infos)
}

func (h *CipherHandler) Encrypt(c *gin.Context) {
	h.transform(c, "encrypt", crypto.Algorithm.Encrypt)
}

func (h *CipherHandler) Decrypt(c *gin.Context) {
	h.transform(c, "decrypt", crypto.Algorithm.Decrypt)
}

func (h *CipherHandler) transform(c *gin.Context, op string, apply func(crypto.Algorithm, string, string) (string, error)) {
	var req models.CipherRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success:   false,
			Message:   fmt.Sprintf("Failed to parse request: %v", err),
			ErrorCode: "bad_request",
		})
		return
	}

	alg, err := crypto.ParseAlgorithm(req.Algorithm)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("X-Cipher-Algorithm", alg.String())

	if len(req.Text) > h.maxTextLength {
		c.JSON(http.StatusRequestEntityTooLarge, models.CipherResponse{
			Success:   false,
			Message:   fmt.Sprintf("Text too large. Maximum length: %d bytes, got: %d bytes", h.maxTextLength, len(req.Text)),
			Algorithm: alg.String(),
			ErrorCode: "text_too_large",
		})
		return
	}

	result, err := apply(alg, req.Text, req.Key)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.log.Debug().
		Str("request_id", c.GetString(requestIDKey)).
		Str("algorithm", alg.String()).
		Str("op", op).
		Int("length", len(req.Text)).
		Msg("text transformed")

	resp := models.CipherResponse{
		Success:   true,
		Message:   fmt.Sprintf("Text successfully %sed with %s", op, alg.DisplayName()),
		Algorithm: alg.String(),
		Result:    result,
	}
	if req.Analyze {
		resp.Analysis = analyze(result)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CipherHandler) PlayfairGrid(c *gin.Context) {
	var req models.GridRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.GridResponse{
			Success:   false,
			Message:   fmt.Sprintf("Failed to parse request: %v", err),
			ErrorCode: "bad_request",
		})
		return
	}

	grid, err := crypto.NewPlayfairGrid(req.Key)
	if err != nil {
		status, code := classify(err)
		c.JSON(status, models.GridResponse{
			Success:   false,
			Message:   fmt.Sprintf("Invalid key: %v", err),
			ErrorCode: code,
		})
		return
	}

	c.JSON(http.StatusOK, models.GridResponse{
		Success: true,
		Message: "Playfair grid built",
		Rows:    grid.Rows(),
	})
}

func (h *CipherHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Failed to parse request: %v", err),
		})
		return
	}
	if len(req.Text) > h.maxTextLength {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"success": false,
			"message": fmt.Sprintf("Text too large. Maximum length: %d bytes", h.maxTextLength),
		})
		return
	}

	c.JSON(http.StatusOK, analyze(req.Text))
}

func (h *CipherHandler) fail(c *gin.Context, err error) {
	status, code := classify(err)
	h.log.Warn().
		Str("request_id", c.GetString(requestIDKey)).
		Str("error_code", code).
		Err(err).
		Msg("request rejected")

	c.JSON(status, models.CipherResponse{
		Success:   false,
		Message:   err.Error(),
		ErrorCode: code,
	})
}

// classify maps engine errors to an HTTP status and a stable error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, crypto.ErrInvalidKeyFormat):
		return http.StatusBadRequest, "invalid_key_format"
	case errors.Is(err, crypto.ErrInvalidKeyLength):
		return http.StatusBadRequest, "invalid_key_length"
	case errors.Is(err, crypto.ErrAmbiguousKey):
		return http.StatusBadRequest, "ambiguous_key"
	case errors.Is(err, crypto.ErrUnknownAlgorithm):
		return http.StatusBadRequest, "unknown_algorithm"
	}
	return http.StatusInternalServerError, "internal_error"
}

func analyze(text string) *models.AnalysisResult {
	freq := analysis.LetterFrequencies(text)
	result := &models.AnalysisResult{
		Frequencies:        make(map[string]int, len(freq)),
		IndexOfCoincidence: analysis.IndexOfCoincidence(text),
		ChiSquaredEnglish:  analysis.ChiSquaredEnglish(text),
	}
	for r, n := range freq {
		result.Frequencies[string(r)] = n
		result.Letters += n
	}
	return result
}
