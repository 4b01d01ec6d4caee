// Package store is a small service with a storage dependency, used to show the
// matchers running inside gomega, gomock, and gotest.tools assertions.
package store

import (
	"strings"
)

// Record is a stored user record.
type Record struct {
	Name  string
	Email string
	Roles []string
}

// Saver persists records.
type Saver interface {
	Save(record Record) error
}

// Register normalizes a record and saves it.
func Register(saver Saver, name, email string, roles ...string) error {
	return saver.Save(Record{
		Name:  strings.TrimSpace(name),
		Email: strings.ToLower(email),
		Roles: roles,
	})
}
