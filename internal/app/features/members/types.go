// internal/app/features/members/types.go
package members

// Table row for the members list.
type memberRow struct {
	ID         uint
	Name       string
	Surname    string
	Mobile     string
	Email      string
	Registered string
}

// List page VM.
type listData struct {
	Title string
	Total int
	Rows  []memberRow
}
