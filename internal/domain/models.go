// Package domain defines the core data types of the contract desk:
// contract records, derived lifecycle statuses, expiry alerts, and chat
// exchanges. These types are persisted as plain JSON documents and form
// the data layer shared by the stores, services, and HTTP handlers.
package domain

import "time"

// Status is the derived lifecycle state of a contract. It is a pure
// function of the contract end date and the current moment and is never
// trusted from persisted data (see DeriveStatus).
type Status string

const (
	// StatusActive means the contract ends more than 30 days from now.
	StatusActive Status = "active"
	// StatusExpiring means the contract ends within the next 30 days,
	// including today.
	StatusExpiring Status = "expiring"
	// StatusExpired means the contract end date has already passed.
	StatusExpired Status = "expired"
)

// Contract types.
const (
	TypeIndividual = "individual"
	TypeClient     = "client"
)

// Contract represents a tracked engagement record: a titled agreement
// between a company and a client over a date range, with optional
// compensation and free-form notes.
//
// Fields:
//   - ID: integer primary key, assigned as max(existing)+1 on creation.
//   - Title / Company / ClientName: required, non-empty at creation.
//   - ContractType: "individual" or "client"; defaults to "individual".
//   - StartDate / EndDate: ISO-8601 calendar dates ("2006-01-02").
//   - Salary: optional non-negative amount; the presentation layer
//     interprets it as INR.
//   - Notes: optional free text.
//   - CreatedAt: set once at creation, immutable thereafter.
//   - Status: derived field, recomputed on every read path. The value
//     serialized to disk is whatever was last derived and may be stale;
//     no reader may use it without re-deriving.
type Contract struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Company      string  `json:"company"`
	ClientName   string  `json:"client_name"`
	ContractType string  `json:"contract_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Salary       float64 `json:"salary,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
	Status       Status  `json:"status"`
}

// ContractUpdate carries a partial-field merge for an existing contract.
// Nil fields are left untouched; non-nil fields overwrite the stored
// value. ID, CreatedAt, and Status are not client-assignable.
type ContractUpdate struct {
	Title        *string  `json:"title"`
	Company      *string  `json:"company"`
	ClientName   *string  `json:"client_name"`
	ContractType *string  `json:"contract_type"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	Salary       *float64 `json:"salary"`
	Notes        *string  `json:"notes"`
}

// Alert is a notice generated for a contract that is expiring or has
// expired. Message is a human-readable sentence naming the contract and
// its state.
type Alert struct {
	ContractID    int    `json:"contract_id"`
	Title         string `json:"title"`
	Company       string `json:"company"`
	EndDate       string `json:"end_date"`
	DaysRemaining int    `json:"days_remaining"`
	Status        Status `json:"status"`
	Message       string `json:"message"`
}

// Exchange is a single turn in a chat session: the user's message and
// the assistant's reply, stamped at the time the reply was produced.
// Sessions are append-only ordered sequences of exchanges.
type Exchange struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
}
