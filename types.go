package main

// RawRecord is one entry of the legacy export's data array. Fields are kept
// as the export delivered them; accessors return false for absent or
// non-string values so callers can tell "missing" from "malformed".
type RawRecord map[string]interface{}

// StringField returns the named field if it is present and a string.
func (r RawRecord) StringField(name string) (string, bool) {
	value, ok := r[name]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// Article is the normalized form of one selected record. Date keeps the
// export's "YYYY-MM-DD HH:MM:SS" string: the format is fixed-width, so
// string order equals chronological order. Images lists sources in order of
// first appearance, duplicates included.
type Article struct {
	Title  string
	Date   string
	Body   string
	Images []string
}

// YearBundle is one migration year's articles, sorted ascending by date.
// The article's position in Articles is its output index.
type YearBundle struct {
	Year     int
	Articles []Article
}

// YearSummary holds per-year counts for the stats command.
type YearSummary struct {
	Year     int
	Articles int
	Images   int
}

// YearResult tracks what a migration run did for one year.
type YearResult struct {
	Year        int
	SkippedYear bool
	Written     int
	Skipped     int
	Images      int
	Thumbnails  int
}
