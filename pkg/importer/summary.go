package importer

import (
	"fmt"
	"time"
)

// MaxShownErrors is the number of error messages shown in a summary.
const MaxShownErrors = 5

// Counters are running totals of an import.
type Counters struct {
	// Seen is the number of data rows read from the file.
	Seen int
	// Total is the number of rows that passed validation and were sent
	// to the store.
	Total int
	// Imported rows belong to batches the store accepted.
	Imported int
	// Failed rows belong to batches the store rejected.
	Failed int
	// Skipped rows did not pass the cutoff or required-column rules.
	Skipped int
}

// Summary is the outcome of an import.
type Summary struct {
	Counters

	Table string
	File  string

	// SkipReasons counts skipped rows per reason.
	SkipReasons map[SkipReason]int

	// Errors are batch and fatal errors in order of appearance.
	Errors []string

	// AggregateErrors are failures of derived companies and areas updates.
	// They do not change the counters.
	AggregateErrors []string

	// Fatal is true when the import stopped before the end of the file.
	Fatal bool

	DryRun   bool
	Duration time.Duration
}

// ShownErrors returns up to MaxShownErrors messages and, if there are
// more, a line with the number of the rest.
func (s Summary) ShownErrors() []string {
	if len(s.Errors) <= MaxShownErrors {
		return s.Errors
	}
	res := make([]string, 0, MaxShownErrors+1)
	res = append(res, s.Errors[:MaxShownErrors]...)
	res = append(res,
		fmt.Sprintf("...and %d more", len(s.Errors)-MaxShownErrors))
	return res
}

// Succeeded is true when nothing failed.
func (s Summary) Succeeded() bool {
	return !s.Fatal && s.Failed == 0
}
