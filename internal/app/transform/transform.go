// Package transform turns an approved-resources spreadsheet export into
// ordered catalog records.
//
// The transform is a pure function of its input: the same export always
// yields the same records, ids and order. Row-level problems never fail a
// run; they are reported as skips.
package transform

import (
	"errors"
	"fmt"
	"io"

	"github.com/dalemusser/gentlelibrary/internal/app/system/csvutil"
	"github.com/dalemusser/gentlelibrary/internal/app/system/htmlsanitize"
	"github.com/dalemusser/gentlelibrary/internal/app/system/normalize"
	"github.com/dalemusser/gentlelibrary/internal/domain/models"
)

// ErrNoRows is returned when the export has no data rows after the header.
var ErrNoRows = errors.New("csv has no rows after the header")

// Skip reasons.
const (
	ReasonNotApproved  = "not approved"
	ReasonMissingTitle = "missing resource name"
	ReasonMissingURL   = "missing link"
)

// Result is the outcome of one transform run.
type Result struct {
	Resources []models.Resource
	Skipped   []csvutil.RowSkip
	Rows      int // data rows read, excluding the header
}

// Transform reads an export from r and builds catalog records.
func Transform(r io.Reader, opts csvutil.Options) (Result, error) {
	recs, err := csvutil.ReadAll(r, opts)
	if err != nil {
		return Result{}, err
	}
	return FromRecords(recs)
}

// FromRecords builds catalog records from tokenized rows. The first record
// is the header.
func FromRecords(recs []csvutil.Record) (Result, error) {
	if len(recs) < 2 {
		return Result{}, ErrNoRows
	}

	header := csvutil.NewHeader(recs[0].Fields)
	rows := recs[1:]
	ids := newIDAssigner()

	res := Result{
		Resources: make([]models.Resource, 0, len(rows)),
		Rows:      len(rows),
	}

	for _, rec := range rows {
		get := func(col string) string { return header.Value(rec.Fields, col) }

		title := get(ColTitle)
		url := get(ColURL)

		if reason := rejectReason(get(ColApproved), title, url); reason != "" {
			res.Skipped = append(res.Skipped, csvutil.RowSkip{
				Line:   rec.Line,
				Title:  title,
				Reason: reason,
			})
			continue
		}

		res.Resources = append(res.Resources, buildResource(ids.next(title), title, url, get))
	}

	Sort(res.Resources)
	return res, nil
}

func rejectReason(approved, title, url string) string {
	switch {
	case !normalize.Truthy(approved):
		return ReasonNotApproved
	case title == "":
		return ReasonMissingTitle
	case url == "":
		return ReasonMissingURL
	}
	return ""
}

func buildResource(id, title, url string, get func(string) string) models.Resource {
	why := htmlsanitize.PlainText(get(ColWhyHelpful))

	var description string
	if why != "" {
		description = normalize.FirstSentence(why)
	}

	return models.Resource{
		ID:           id,
		Title:        title,
		URL:          url,
		Description:  description,
		WhyItHelps:   why,
		Category:     MapCategory(get(ColType)),
		SupportNeeds: MapSupportNeeds(get(ColHelpsWith)),
		SensoryLoad:  models.ParseSensoryLoad(get(ColSensoryLoad)),
		SetupEffort:  models.ParseSetupEffort(get(ColSetupEffort)),
		PriceType:    models.ParsePriceTypeOrDefault(get(ColPriceType)),
		Featured:     normalize.Truthy(get(ColFeatured)),
		Domain:       normalize.Domain(url),
	}
}

// Summary is a one-line description of a run for operators.
func (r Result) Summary() string {
	return fmt.Sprintf("%d of %d rows published, %d skipped", len(r.Resources), r.Rows, len(r.Skipped))
}
