package domain

// SubjectType identifies the kind of principal a token was issued to. Only
// staff tokens exist today; the type is kept so tokens stay self-describing.
type SubjectType string

const (
	SubjectTypeStaff SubjectType = "STAFF"
)
