package exports

import "time"

// Output formats recorded in the history.
const (
	FormatPDF  = "pdf"
	FormatText = "text"
)

// Export is one committed export of an editing session.
type Export struct {
	ID        string
	UserID    string
	SessionID string
	Template  string
	Format    string
	Pages     int
	SizeBytes int64
	// FileKey is the object store key of the preview, empty for text exports.
	FileKey   string
	CreatedAt time.Time
}
