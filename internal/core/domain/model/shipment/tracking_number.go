package shipment

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"shiptrack/internal/pkg/errs"
)

const (
	trackingNumberPrefix = "GL-"
	trackingNumberLength = 10

	// Digits and uppercase letters without O. 35 characters, so the keyspace
	// is 35^10 and random collisions are a one-in-quadrillions event.
	trackingNumberAlphabet = "0123456789ABCDEFGHIJKLMNPQRSTUVWXYZ"
)

var trackingNumberPattern = regexp.MustCompile(`^GL-[0-9A-NP-Z]{10}$`)

// ErrTrackingNumberIsNotConstructed indicates a zero-value TrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via GenerateTrackingNumber or TrackingNumberFromString",
)

// TrackingNumber is the public identifier of a shipment: the "GL-" prefix
// followed by ten characters drawn from trackingNumberAlphabet. It is
// immutable after creation and unique across the registry (enforced by the
// store's unique constraint, not by this value object).
type TrackingNumber struct {
	value string
}

// GenerateTrackingNumber produces a new random tracking number. Each of the
// ten characters is sampled independently and uniformly from the alphabet.
// Uniqueness is the caller's concern: persist and retry on collision.
func GenerateTrackingNumber() TrackingNumber {
	var sb strings.Builder
	sb.WriteString(trackingNumberPrefix)
	for i := 0; i < trackingNumberLength; i++ {
		sb.WriteByte(trackingNumberAlphabet[rand.IntN(len(trackingNumberAlphabet))])
	}
	return TrackingNumber{value: sb.String()}
}

// TrackingNumberFromString parses a tracking number received from external
// input or restored from persistence.
func TrackingNumberFromString(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%q does not match %s", s, trackingNumberPattern.String()),
		)
	}
	return TrackingNumber{value: s}, nil
}

// String returns the full tracking number including the "GL-" prefix.
func (n TrackingNumber) String() string {
	return n.value
}

// IsEqual reports whether two tracking numbers are the same.
func (n TrackingNumber) IsEqual(other TrackingNumber) bool {
	return n.value == other.value
}

// Validate returns ErrTrackingNumberIsNotConstructed for the zero value.
func (n TrackingNumber) Validate() error {
	if n.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
