package feed

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// OpCreate is the commit operation carrying new records
const OpCreate = "create"

// Event is one Jetstream message
// Only the fields needed to pull post text are decoded
type Event struct {
	DID    string  `json:"did"`
	TimeUS int64   `json:"time_us"`
	Kind   string  `json:"kind"`
	Commit *Commit `json:"commit,omitempty"`
}

// Commit is a repository write
type Commit struct {
	Rev        string  `json:"rev"`
	Operation  string  `json:"operation"`
	Collection string  `json:"collection"`
	RKey       string  `json:"rkey"`
	Record     *Record `json:"record,omitempty"`
}

// Record is the written post
type Record struct {
	Type      string   `json:"$type"`
	Text      string   `json:"text"`
	CreatedAt string   `json:"createdAt"`
	Langs     []string `json:"langs,omitempty"`
}

// ExtractText decodes a message and returns the post text of a create commit
// ok is false for anything else: identity/account events, updates, deletes, empty posts
// The text is NFC-normalized so combining sequences compose into single clusters where possible
func ExtractText(data []byte) (text string, ok bool, err error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return "", false, fmt.Errorf("decode event: %w", err)
	}
	if ev.Commit == nil || ev.Commit.Operation != OpCreate || ev.Commit.Record == nil {
		return "", false, nil
	}
	if ev.Commit.Record.Text == "" {
		return "", false, nil
	}
	return norm.NFC.String(ev.Commit.Record.Text), true, nil
}
