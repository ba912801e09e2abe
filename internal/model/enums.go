package model

// ModerationStatus is shared by membership requests and reviews.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "PENDING"
	StatusApproved ModerationStatus = "APPROVED"
	StatusRejected ModerationStatus = "REJECTED"
)

func (s ModerationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether an admin may move an item into s.
func (s ModerationStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}
