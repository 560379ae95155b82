package repoargs

import "time"

type AccountCreate struct {
	AccountUserID int64
	AccountNumber string
	Balance       int64
	RegisteredAt  time.Time
}
