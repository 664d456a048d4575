// Package models defines server-side data models persisted in the database.
package models

// Credentials is the login material held by a group's primary account.
type Credentials struct {
	Phone    string
	Password string
}

// Account is one row of the accounts relation.
//
// Credentials is non-nil only for the primary account of a group. Members
// carry a Username instead and share RecoveryID and LinkedPhone with the
// primary.
type Account struct {
	ID          int64
	Username    string
	Credentials *Credentials
	RecoveryID  string
	LinkedPhone string
}

// IsPrimary reports whether a is the credential-holding account of its group.
func (a *Account) IsPrimary() bool {
	return a.Credentials != nil
}

// Group is every account sharing one LinkedPhone, in creation order.
type Group struct {
	LinkedPhone string
	RecoveryID  string
	Members     []*Account
}

// Primary returns the group's primary account, or nil if the group is empty.
func (g *Group) Primary() *Account {
	for _, m := range g.Members {
		if m.IsPrimary() {
			return m
		}
	}
	return nil
}
