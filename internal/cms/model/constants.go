package model

// Staff roles, most privileged first. The ordering is load-bearing: route
// guards treat a named role as a threshold, so every role ranked above it is
// allowed too. See the policy package.
const (
	RoleAdmin        = "admin"
	RoleInvestigator = "investigator"
	RoleOfficer      = "officer"
	RoleAuditor      = "auditor"
)

// Clearance levels, least restrictive first. Only officers carry one.
const (
	ClearanceLow      = "low"
	ClearanceMedium   = "medium"
	ClearanceHigh     = "high"
	ClearanceCritical = "critical"
)

// Case statuses
const (
	CaseStatusPending = "pending"
	CaseStatusOngoing = "ongoing"
	CaseStatusClosed  = "closed"
)

// Evidence types
const (
	EvidenceTypeText  = "text"
	EvidenceTypeImage = "image"
)

// Deletion request statuses. A request is created as initiated, advanced to
// confirmed by an explicit "yes", and moved to finalized only for the instant
// between claiming the finalize and removing the row.
const (
	DeletionStatusInitiated = "initiated"
	DeletionStatusConfirmed = "confirmed"
	DeletionStatusFinalized = "finalized"
)

// Observed workflow states reported by the deletion-progress endpoint on top
// of the persisted statuses above.
const (
	DeletionObservedFinalized = "finalized"
	DeletionObservedFailed    = "failed"
	DeletionObservedNotFound  = "not_found"
)

// ConfirmToken is the only accepted affirmative value for the hard-delete
// confirmation step. Anything else cancels the request.
const ConfirmToken = "yes"

// ActionHardDelete is the audit log action written for a finalized deletion.
const ActionHardDelete = "hard-delete"

// Person types
const (
	PersonTypeSuspect = "suspect"
	PersonTypeVictim  = "victim"
	PersonTypeWitness = "witness"
)

// AllowedRoles defines the assignable staff roles.
var AllowedRoles = map[string]bool{
	RoleAdmin:        true,
	RoleInvestigator: true,
	RoleOfficer:      true,
	RoleAuditor:      true,
}

// AllowedClearances defines the valid clearance values.
var AllowedClearances = map[string]bool{
	ClearanceLow:      true,
	ClearanceMedium:   true,
	ClearanceHigh:     true,
	ClearanceCritical: true,
}

// AllowedCaseStatuses defines the valid case statuses.
var AllowedCaseStatuses = map[string]bool{
	CaseStatusPending: true,
	CaseStatusOngoing: true,
	CaseStatusClosed:  true,
}

// AllowedPersonTypes defines the valid person types.
var AllowedPersonTypes = map[string]bool{
	PersonTypeSuspect: true,
	PersonTypeVictim:  true,
	PersonTypeWitness: true,
}
