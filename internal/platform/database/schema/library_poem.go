package schema

// LibraryPoemTable represents the 'library.poem' table
type LibraryPoemTable struct {
	Table       string
	ID          string
	Title       string
	Poet        string
	Content     string
	Era         string
	Theme       string
	Type        string
	Meter       string
	Rhyme       string
	Year        string
	Description string
	SortOrder   string
	CreatedAt   string
}

// LibraryPoem is the schema definition for library.poem
var LibraryPoem = LibraryPoemTable{
	Table:       "library.poem",
	ID:          "id",
	Title:       "title",
	Poet:        "poet",
	Content:     "content",
	Era:         "era",
	Theme:       "theme",
	Type:        "type",
	Meter:       "meter",
	Rhyme:       "rhyme",
	Year:        "year",
	Description: "description",
	SortOrder:   "sortorder",
	CreatedAt:   "createdat",
}

// Columns returns the selectable columns in scan order.
func (t LibraryPoemTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Poet, t.Content, t.Era, t.Theme,
		t.Type, t.Meter, t.Rhyme, t.Year, t.Description,
	}
}
