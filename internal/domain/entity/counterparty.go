package entity

import "time"

// CounterpartyKind says which side of a transaction an entity can appear on.
type CounterpartyKind string

const (
	CounterpartySender   CounterpartyKind = "sender"
	CounterpartyReceiver CounterpartyKind = "receiver"
	CounterpartyBoth     CounterpartyKind = "both"
)

// Counterparty is a reference entity used to populate sender/receiver
// options and receiver grouping in reports.
type Counterparty struct {
	ID         int64
	Name       string
	Kind       CounterpartyKind
	IsDeleted  bool
	IsTrial    bool
	ModifiedAt *time.Time
	CreatedAt  time.Time
}

// SavedSender is a remembered sender name offered as an entry-form shortcut.
type SavedSender struct {
	ID        int64
	Sender    string
	CreatedAt time.Time
}
