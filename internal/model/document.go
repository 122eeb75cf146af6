package model

import "time"

// Document is ingested free text available to the semantic tier once
// IsProcessed is set.
type Document struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	Filename    string            `json:"filename" bson:"filename"`
	FileType    string            `json:"fileType" bson:"fileType"`
	Content     string            `json:"content" bson:"content"`
	Language    string            `json:"language" bson:"language"`
	IsProcessed bool              `json:"isProcessed" bson:"isProcessed"`
	Metadata    map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`
}
