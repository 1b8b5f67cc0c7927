// Package models contain needed models
package models

// CipherRequest represents the request for encrypting or decrypting text
type CipherRequest struct {
	Algorithm string `json:"algorithm" form:"algorithm"`
	Text      string `json:"text" form:"text"`
	Key       string `json:"key" form:"key"`
	Analyze   bool   `json:"analyze" form:"analyze"`
}

// CipherResponse represents the response after encryption or decryption
type CipherResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Algorithm string          `json:"algorithm,omitempty"`
	Result    string          `json:"result"`
	ErrorCode string          `json:"error_code,omitempty"`
	Analysis  *AnalysisResult `json:"analysis,omitempty"`
}

// AlgorithmInfo describes a supported cipher and the key it expects
type AlgorithmInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	KeyKind     string `json:"key_kind"`
	ExampleKey  string `json:"example_key"`
}

type GridRequest struct {
	Key string `json:"key" form:"key"`
}

type GridResponse struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Rows      []string `json:"rows,omitempty"`
	ErrorCode string   `json:"error_code,omitempty"`
}

type AnalyzeRequest struct {
	Text string `json:"text" form:"text"`
}

// AnalysisResult holds letter statistics of a piece of text
type AnalysisResult struct {
	Letters            int            `json:"letters"`
	Frequencies        map[string]int `json:"frequencies"`
	IndexOfCoincidence float64        `json:"index_of_coincidence"`
	ChiSquaredEnglish  float64        `json:"chi_squared_english"`
}

// Config is the application configuration loaded from config.ini
type Config struct {
	Server ServerConfig `ini:"server"`
	Log    LogConfig    `ini:"log"`
}

type ServerConfig struct {
	Port          string   `ini:"port"`
	Mode          string   `ini:"mode"`
	AllowOrigins  []string `ini:"allow_origins" delim:","`
	MaxTextLength int      `ini:"max_text_length"`
}

type LogConfig struct {
	Level string `ini:"level"`
}
