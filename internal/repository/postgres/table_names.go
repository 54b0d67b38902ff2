package postgres

import "fmt"

// TableNames holds dynamically prefixed table names.
// The prefix separates environments sharing one database (dev_, test_, prod_).
type TableNames struct {
	Users     string
	Projects  string
	Settings  string
	Chats     string
	Documents string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Users:     fmt.Sprintf("%susers", prefix),
		Projects:  fmt.Sprintf("%sprojects", prefix),
		Settings:  fmt.Sprintf("%sproject_settings", prefix),
		Chats:     fmt.Sprintf("%schats", prefix),
		Documents: fmt.Sprintf("%sproject_documents", prefix),
	}
}
