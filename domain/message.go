// Package domain contains core concepts of the group bridge.
// This file defines chat messages and their direction flags.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageFlags mirror the direction flags the host uses to render a message.
type MessageFlags uint

const (
	FlagSend MessageFlags = 1 << iota
	FlagRecv
	FlagRemoteSend
	FlagDelayed
	FlagImages
)

// FlagsSelfEcho marks a message the local user sent from another device or
// that signald reflected back.
const FlagsSelfEcho = FlagSend | FlagRemoteSend | FlagDelayed

func (f MessageFlags) Has(flag MessageFlags) bool {
	return f&flag == flag
}

// Message is what ends up written in a session.
type Message struct {
	ID        uuid.UUID
	GroupID   string
	SenderID  string
	Content   string
	Flags     MessageFlags
	CreatedAt time.Time
}

type Attachment struct {
	ContentType    string `json:"contentType"`
	StoredFilename string `json:"storedFilename"`
	CustomFilename string `json:"customFilename"`
	Size           int64  `json:"size"`
}

// GroupMessage is an inbound group message, already extracted from its signald envelope.
type GroupMessage struct {
	GroupID     string
	SenderID    string
	Body        string
	Attachments []Attachment
	IsSelfEcho  bool
	Timestamp   time.Time
}
