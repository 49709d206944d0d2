package models

// Document is a remote document as seen by the document store client.
// Listings carry file metadata only; Content is filled by reads.
type Document struct {
	ID          string
	Description string
	Public      bool
	Files       map[string]DocumentFile
}

// DocumentFile is one named file inside a Document.
type DocumentFile struct {
	Filename  string
	Content   string
	RawURL    string
	Truncated bool
}

// HasFile reports whether the document contains a file called name.
func (d Document) HasFile(name string) bool {
	_, ok := d.Files[name]
	return ok
}
