package models

// TranslateRequest represents the request body for the translate endpoint
type TranslateRequest struct {
	Texts          Texts  `json:"texts"`
	TargetLanguage string `json:"targetLanguage"`
	SourceLanguage string `json:"sourceLanguage,omitempty"`
}

// TranslateResponse represents the response body of the translate endpoint
//
// On a degraded outcome Translations holds the request texts unchanged.
type TranslateResponse struct {
	Translations Texts  `json:"translations"`
	Outcome      string `json:"outcome"`
}
