// SPDX-License-Identifier: MIT
// Package: sixdegrees/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach the method name with
// builderErrorf and keep the sentinel via %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrEmptyTitle indicates a record without a movie title while WithStrict(true)
// is set. In the default lenient mode such records are skipped and counted.
var ErrEmptyTitle = errors.New("builder: movie title is empty")

// ErrEmptyParticipant indicates an empty cast entry while WithStrict(true) is set.
// In the default lenient mode such entries are skipped and counted in Report.
var ErrEmptyParticipant = errors.New("builder: participant name is empty")

// Method tokens used as error prefixes.
const (
	methodIngest    = "Ingest"
	methodIngestAll = "IngestAll"
)

// builderErrorf prefixes a %w-formatted message with the method name.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
