package sqlite

// Task is a row of the task table.
type Task struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Done bool   `db:"done"`
}
