package models

import "time"

// Glossary represents a provider-side glossary
//
// Glossaries are owned by the provider; they are only listed, created and deleted by id.
type Glossary struct {
	ID           string    `json:"glossary_id"`
	Name         string    `json:"name,omitempty"`
	SourceLang   string    `json:"source_lang"`
	TargetLang   string    `json:"target_lang"`
	Ready        bool      `json:"ready"`
	CreationDate time.Time `json:"creation_date"`
	EntryCount   int       `json:"entry_count,omitempty"`
}

// GlossaryStatus describes the synchronisation state of one usable language pair
type GlossaryStatus struct {
	SourceLang   string     `json:"sourceLang"`
	TargetLang   string     `json:"targetLang"`
	GlossaryID   string     `json:"glossaryId,omitempty"`
	CreationDate *time.Time `json:"creationDate,omitempty"`
	IsOutdated   bool       `json:"isOutdated"`
	CanBeUsed    bool       `json:"canBeUsed"`
}

// GlossarySyncResult describes what a synchronisation did for one language pair
type GlossarySyncResult struct {
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
	EntryCount int    `json:"entryCount"`
	Deleted    int    `json:"deleted"`
	Created    bool   `json:"created"`
}
