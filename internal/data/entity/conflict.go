package entity

type ConflictKind string

const (
	ConflictKindInstructor ConflictKind = "instructor"
	ConflictKindLocation   ConflictKind = "location"
)

// ConflictReport names two activities whose time ranges overlap while
// sharing a resource. Reports are informational; nothing is auto-resolved
// or blocked.
type ConflictReport struct {
	Kind     ConflictKind
	Resource string
	A        *Activity
	B        *Activity
}
