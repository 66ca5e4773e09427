package domain

import "time"

// CustomMessageLabel is the MessageLabel recorded when a send used no template.
const CustomMessageLabel = "Custom message"

// SentRecord is the immutable history entry written once per send.
// GroupID is a weak reference: the group may since have been deleted.
type SentRecord struct {
	ID           string    `json:"id" db:"id"`
	OwnerID      string    `json:"owner_id" db:"owner_id"`
	Subject      string    `json:"subject" db:"subject"`
	GroupID      string    `json:"group_id" db:"group_id"`
	MessageLabel string    `json:"message" db:"message_label"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SentEntry is a SentRecord joined with the display name of its group.
// GroupName is empty when the referenced group no longer exists.
type SentEntry struct {
	SentRecord
	GroupName string `json:"group_name"`
}

// DashboardSummary counts what an owner has created so far.
type DashboardSummary struct {
	Groups    int `json:"groups"`
	Templates int `json:"templates"`
	Sents     int `json:"sents"`
}
