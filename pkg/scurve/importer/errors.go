package importer

// ValidationError reports a malformed sheet structure: a missing required
// column, no data rows, or no parseable dates. Cell-level problems are
// absorbed locally (row dropped, value zeroed) and never produce one.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid sheet: " + e.Reason
}

// Validation reasons, each a distinct fatal import condition.
const (
	ReasonNoDataRows       = "no data rows"
	ReasonNoDateColumn     = "missing date column"
	ReasonNoActualColumn   = "missing actual column"
	ReasonNoPlanColumn     = "missing plan column"
	ReasonNoValidDates     = "no valid dates"
)
