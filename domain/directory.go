package domain

// DefaultGroupingLabel is the top-level buddy list grouping every group chat is filed under.
const DefaultGroupingLabel = "Signal"

// Grouping is a top-level section of the local contact directory.
type Grouping struct {
	Label string `json:"label"`
}

// DirectoryEntry is the persistent contact-list record of a group.
// Name is the internal name and always equals the group ID.
type DirectoryEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Alias    string `json:"alias,omitempty"`
	Grouping string `json:"grouping"`
}

func NewDirectoryEntry(id, grouping string) DirectoryEntry {
	return DirectoryEntry{ID: id, Name: id, Grouping: grouping}
}

// DisplayName is what the host shows in its buddy list.
func (e DirectoryEntry) DisplayName() string {
	if e.Alias != "" {
		return e.Alias
	}
	return e.Name
}
