package model

// Scope is a named capability in the global registry. The set of all rows is
// the active scope set. A user may still list a scope name that was never
// registered or has since been removed; membership is not enforced.
type Scope struct {
	Name string `json:"name" gorm:"primaryKey;size:255"`
}
