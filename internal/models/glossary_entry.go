package models

import "time"

// GlossaryEntry represents a single term of a glossary aggregate in one language
type GlossaryEntry struct {
	ID                       int       `json:"id"`
	AggregateIdentifier      string    `json:"aggregateIdentifier"`
	LastModificationDateTime time.Time `json:"lastModificationDateTime"`
	GlossaryLanguage         string    `json:"glossaryLanguage"`
	Text                     string    `json:"text"`
}

// EntryAggregate groups the entries sharing one aggregate identifier, keyed by language
type EntryAggregate struct {
	AggregateIdentifier string            `json:"aggregateIdentifier"`
	Texts               map[string]string `json:"texts"`
}

// EntryTextsRequest represents the request body for creating or updating an aggregate
type EntryTextsRequest struct {
	AggregateIdentifier string            `json:"aggregateIdentifier,omitempty"`
	Texts               map[string]string `json:"texts"`
}

// EntriesResponse represents the glossary entry listing returned by the admin API
type EntriesResponse struct {
	Success   bool             `json:"success"`
	Languages []string         `json:"languages,omitempty"`
	Entries   []EntryAggregate `json:"entries"`
}
