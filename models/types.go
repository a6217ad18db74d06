// Package models contain needed models
package models

// EncodeStats describes how much of an image's capacity an embed used.
type EncodeStats struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	CapacityBits int     `json:"capacity_bits"`
	UsedBits     int     `json:"used_bits"`
	Utilization  float64 `json:"utilization"`
}

// DetectionDetails carries the raw measures behind a suspicion score.
type DetectionDetails struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	LSBOnes    int     `json:"lsb_ones"`
	LSBZeros   int     `json:"lsb_zeros"`
	LSBBalance float64 `json:"lsb_balance"`
	FlipRate   float64 `json:"flip_rate"`
	Notes      string  `json:"notes"`
}

// CapacityResponse is returned by the capacity endpoint.
type CapacityResponse struct {
	CapacityBits  int `json:"capacity_bits"`
	CapacityBytes int `json:"capacity_bytes"`
}

// DetectResponse is returned by the detect endpoint.
type DetectResponse struct {
	SuspicionScore float64           `json:"suspicion_score"`
	Details        *DetectionDetails `json:"details"`
}

// ErrorResponse is the JSON shape of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
