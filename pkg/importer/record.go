package importer

// Row is a raw CSV data row keyed by header. Fields missing from a short
// row are absent from the map.
type Row map[string]string

// Record is a mapped and coerced row keyed by target column. Values are
// nil, float64, bool or string.
type Record map[string]any

// SkipReason explains why a row was left out of a batch. Skips are
// counted, they are never reported as errors.
type SkipReason string

const (
	// NotSkipped means the row goes to the batch.
	NotSkipped SkipReason = ""
	// SkipCutoff is used for permits created before the cutoff date.
	SkipCutoff SkipReason = "cutoff"
	// SkipMissingRequired is used when a required column has no value.
	SkipMissingRequired SkipReason = "missing_required"
)
