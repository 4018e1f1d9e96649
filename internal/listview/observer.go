package listview

import "github.com/rs/zerolog"

// Observer receives one notification per page computation.
type Observer interface {
	PageComputed(term string, offset, filteredCount int)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(term string, offset, filteredCount int)

// PageComputed calls f.
func (f ObserverFunc) PageComputed(term string, offset, filteredCount int) {
	f(term, offset, filteredCount)
}

type logObserver struct {
	logger zerolog.Logger
}

// LogObserver returns an Observer that writes a debug event for every
// computed page.
func LogObserver(logger zerolog.Logger) Observer {
	return logObserver{logger: logger}
}

func (o logObserver) PageComputed(term string, offset, filteredCount int) {
	o.logger.Debug().
		Str("subsystem", "listview").
		Str("operation", "compute_page").
		Str("search_term", term).
		Int("offset", offset).
		Int("filtered_count", filteredCount).
		Msg("computed visible page")
}
