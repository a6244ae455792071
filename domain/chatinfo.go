package domain

// ChatNameKey is the single chat component the host asks for when joining a chat.
const ChatNameKey = "name"

// ChatInfoEntry describes one field of the host's "join chat" dialog.
type ChatInfoEntry struct {
	Label      string
	Identifier string
	Required   bool
}
