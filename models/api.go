// Package models holds the JSON request and response bodies of the HTTP API.
package models

import (
	"farmbook/pkg/extract"
	"farmbook/pkg/scan"
)

type TokenRequest struct {
	APIKey string `json:"api_key" binding:"required"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse mirrors scan.Outcome without the file name and raw text.
type ExtractResponse struct {
	Result     extract.Result     `json:"result"`
	Suggestion extract.Suggestion `json:"suggestion"`
	Status     scan.Status        `json:"status"`
	Message    string             `json:"message,omitempty"`
}

func NewExtractResponse(o scan.Outcome) ExtractResponse {
	return ExtractResponse{
		Result:     o.Result,
		Suggestion: o.Suggestion,
		Status:     o.Status,
		Message:    o.Message,
	}
}

type CategoryInfo struct {
	Value    extract.Category `json:"value"`
	Label    string           `json:"label"`
	Keywords []string         `json:"keywords"`
}

// Categories lists every category in declared order.
func Categories() []CategoryInfo {
	cats := extract.Categories()
	out := make([]CategoryInfo, 0, len(cats))
	for _, c := range cats {
		kws := extract.Keywords(c)
		if kws == nil {
			kws = []string{}
		}
		out = append(out, CategoryInfo{Value: c, Label: c.Label(), Keywords: kws})
	}
	return out
}
