package dto

type ClipboardDataResponse struct {
	Text  string `json:"text,omitempty"`
	Html  string `json:"html,omitempty"`
	Image string `json:"image,omitempty"`
	Type  string `json:"type"`
	// classifier suggestion for the text part
	SuggestedType string `json:"suggested_type,omitempty"`
}

type ClipboardInteractionResponse struct {
	Started    bool `json:"started"`
	Monitoring bool `json:"monitoring"`
}
