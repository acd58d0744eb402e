package main

import (
	"sort"
	"strconv"
	"time"
)

// timestampFormat is the export's fixed created format. Lexicographic order
// on these strings equals chronological order.
const timestampFormat = "2006-01-02 15:04:05"

// Selector filters export records by year and category and maps them into
// normalized articles.
type Selector struct {
	normalizer *Normalizer
}

// NewSelector creates a Selector using the given normalizer.
func NewSelector(normalizer *Normalizer) *Selector {
	return &Selector{normalizer: normalizer}
}

// Select returns the YearBundle for one migration year: records matching
// year and category, normalized and sorted ascending by date. Ties keep the
// export's order.
func (s *Selector) Select(records []RawRecord, year, categoryID int) (YearBundle, error) {
	selected, err := s.SelectRecords(records, year, categoryID)
	if err != nil {
		return YearBundle{}, err
	}

	articles := make([]Article, 0, len(selected))
	for _, record := range selected {
		article, err := s.normalizer.Normalize(record)
		if err != nil {
			return YearBundle{}, err
		}
		articles = append(articles, article)
	}

	return YearBundle{Year: year, Articles: articles}, nil
}

// SelectRecords returns the raw records matching year and category, sorted
// ascending by created. Records without a string created or catid are
// excluded; records where either value fails to parse abort the run, even
// when the record would not have matched the filter.
func (s *Selector) SelectRecords(records []RawRecord, year, categoryID int) ([]RawRecord, error) {
	var selected []RawRecord
	for _, record := range records {
		created, catid, ok, err := parseRecordFilter(record)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if created.Year() == year && catid == categoryID {
			selected = append(selected, record)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, _ := selected[i].StringField("created")
		b, _ := selected[j].StringField("created")
		return a < b
	})

	return selected, nil
}

// Summarize counts articles and images per year for one category, in a
// single pass over the export. Parse failures are fatal exactly as in
// Select, so stats and migration agree on what the export contains.
func (s *Selector) Summarize(records []RawRecord, categoryID int) ([]YearSummary, error) {
	counts := make(map[int]*YearSummary)
	for _, record := range records {
		created, catid, ok, err := parseRecordFilter(record)
		if err != nil {
			return nil, err
		}
		if !ok || catid != categoryID {
			continue
		}

		article, err := s.normalizer.Normalize(record)
		if err != nil {
			return nil, err
		}

		summary := counts[created.Year()]
		if summary == nil {
			summary = &YearSummary{Year: created.Year()}
			counts[created.Year()] = summary
		}
		summary.Articles++
		summary.Images += len(article.Images)
	}

	summaries := make([]YearSummary, 0, len(counts))
	for _, summary := range counts {
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Year < summaries[j].Year })

	return summaries, nil
}

// parseRecordFilter reads a record's created and catid. ok is false when
// either field is absent or not a string. A present value that does not
// parse is a schema violation: the legacy export always carried well-formed
// values, so a malformed one means the contract broke.
func parseRecordFilter(record RawRecord) (created time.Time, catid int, ok bool, err error) {
	createdRaw, createdOK := record.StringField("created")
	catidRaw, catidOK := record.StringField("catid")
	if !createdOK || !catidOK {
		return time.Time{}, 0, false, nil
	}

	created, parseErr := time.Parse(timestampFormat, createdRaw)
	if parseErr != nil {
		return time.Time{}, 0, false, &SchemaViolationError{
			Field: "created", Value: createdRaw, Reason: "does not match format " + timestampFormat,
		}
	}

	catid, parseErr = strconv.Atoi(catidRaw)
	if parseErr != nil {
		return time.Time{}, 0, false, &SchemaViolationError{
			Field: "catid", Value: catidRaw, Reason: "is not an integer",
		}
	}

	return created, catid, true, nil
}
