package client

// User is the subset of the server's User type the CLI works with.
type User struct {
	ID         string `json:"id"`
	DatabaseID int    `json:"databaseId"`
	Username   string `json:"username"`
}

type Note struct {
	ID     int    `json:"databaseId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// NotesPage is one window of a user's notes connection.
type NotesPage struct {
	Notes     []Note
	Total     int
	EndCursor string
	HasNext   bool
}

// protectedNote decodes the ProtectedNote union.
type protectedNote struct {
	Typename string `json:"__typename"`
	Message  string `json:"message"`
	Note
}

// toNote returns nil, nil for a null union value.
func (p *protectedNote) toNote() (*Note, error) {
	if p == nil {
		return nil, nil
	}
	if p.Typename == "AuthInfoField" {
		return nil, mapError(&GraphQLError{Message: p.Message, Extensions: ErrorExtensions{Code: "UNAUTHENTICATED"}})
	}
	n := p.Note
	return &n, nil
}
