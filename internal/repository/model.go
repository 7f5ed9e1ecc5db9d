package repository

// TaskRecord is the portable form of a task: the plain key-value
// representation persisted by every backend. The JSON field names are the
// on-disk contract and must not change.
type TaskRecord struct {
	Name        string `json:"name"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	CreatedDate string `json:"created_date"`
}
