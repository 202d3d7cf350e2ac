package models

import "time"

// IdempotencyKey tracks processed money-movement requests so a retried
// request replays the original response instead of charging twice.
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
