// Package names validates the server-name syntax of issuer and origin names
// carried in a token challenge. The codec in the parent package deliberately
// does not perform these checks; callers that need them opt in here.
//
// A valid name is a lowercase ASCII hostname, optionally followed by ":" and
// a decimal port. IP literals are not accepted.
package names

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// ErrInvalidServerName is returned when a name does not conform to
// server-name syntax
var ErrInvalidServerName = errors.New("invalid server name")

// hostProfile enforces DNS label shape and length limits on the host part
var hostProfile = idna.New(
	idna.ValidateLabels(true),
	idna.VerifyDNSLength(true),
	idna.StrictDomainName(true),
)

// Validate checks a single issuer or origin name for server-name syntax
func Validate(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidServerName)
	}

	host := name
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		host = name[:i]
		if err := validatePort(name[i+1:]); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidServerName, name, err)
		}
	}

	if host == "" {
		return fmt.Errorf("%w: %q: host is empty", ErrInvalidServerName, name)
	}
	for i := 0; i < len(host); i++ {
		if host[i] >= utf8.RuneSelf {
			return fmt.Errorf("%w: %q: host is not ASCII", ErrInvalidServerName, name)
		}
	}
	if strings.ToLower(host) != host {
		return fmt.Errorf("%w: %q: host must be lowercase", ErrInvalidServerName, name)
	}
	if _, err := hostProfile.ToASCII(host); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidServerName, name, err)
	}
	return nil
}

// ValidateAll checks every name in order and returns the first failure
func ValidateAll(names []string) error {
	for _, name := range names {
		if err := Validate(name); err != nil {
			return err
		}
	}
	return nil
}

func validatePort(port string) error {
	if port == "" {
		return errors.New("port is empty")
	}
	if len(port) > 5 {
		return errors.New("port out of range")
	}
	for i := 0; i < len(port); i++ {
		if port[i] < '0' || port[i] > '9' {
			return errors.New("port is not a decimal number")
		}
	}
	if n, _ := strconv.Atoi(port); n > 65535 {
		return errors.New("port out of range")
	}
	return nil
}
