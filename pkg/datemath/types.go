package datemath

// DateLayout is the date-only representation used for due dates.
const DateLayout = "2006-01-02"

// inputLayouts are tried in order when reading a date or datetime.
var inputLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}
