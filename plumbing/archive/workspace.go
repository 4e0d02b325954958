package main

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHandle is returned when a handle isn't of the form user@domain
var ErrInvalidHandle = errors.New("invalid handle")

// Handle identifies an archived account
type Handle struct {
	Username string
	Domain   string
}

// ParseHandle splits "user@domain". A leading "@" is accepted.
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "@")
	username, domain, ok := strings.Cut(s, "@")
	if !ok || username == "" || domain == "" || strings.Contains(domain, "@") {
		return Handle{}, fmt.Errorf("%w: %q (expected user@domain)", ErrInvalidHandle, s)
	}
	return Handle{Username: username, Domain: domain}, nil
}

func (h Handle) String() string {
	return h.Username + "@" + h.Domain
}

// prefix is the common stem of every file belonging to this account:
// "domain.user.username"
func (h Handle) prefix() string {
	return h.Domain + ".user." + h.Username
}

// ArchiveFile returns the name of the archive JSON file
func (h Handle) ArchiveFile() string {
	return h.prefix() + ".json"
}

// MediaDir returns the name of the directory holding cached media. Pages
// reference media relative to it.
func (h Handle) MediaDir() string {
	return h.prefix()
}

// PageFile returns the document name for a page of a collection
// Example: "example.org.user.alice.statuses.3.html"
func (h Handle) PageFile(collection string, page int) string {
	return fmt.Sprintf("%s.%s.%d.html", h.prefix(), collection, page)
}
