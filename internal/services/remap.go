package services

import (
	"fmt"
	"sort"
	"time"

	"warlon-catering-service/internal/domain"
)

// DateMapping maps a source calendar day (keyed YYYY-MM-DD, so string
// order is chronological order) to its single target day. It lives only
// for the duration of one bulk operation.
type DateMapping map[string]time.Time

// MapDeliveryDates computes the target day for every distinct source
// day, starting at the anchor. Source days are processed in ascending
// order and the cursor only ever moves forward, skipping Sundays, so the
// mapping is injective and monotone: deliveries that shared a day still
// share one, and the relative day order survives the shift.
//
// A Sunday anchor is rejected before any mapping is computed, even for
// an empty source set.
func MapDeliveryDates(sources []time.Time, anchor time.Time) (DateMapping, error) {
	if !domain.IsDeliveryDay(anchor) {
		return nil, fmt.Errorf("%w: target start date %s is a Sunday; deliveries do not run on Sundays",
			ErrInvalidInput, anchor.Format(domain.DateLayout))
	}

	distinct := make(map[string]struct{}, len(sources))
	keys := make([]string, 0, len(sources))
	for _, src := range sources {
		k := src.Format(domain.DateLayout)
		if _, ok := distinct[k]; ok {
			continue
		}
		distinct[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mapping := make(DateMapping, len(keys))
	cursor := anchor
	for _, k := range keys {
		for !domain.IsDeliveryDay(cursor) {
			cursor = cursor.AddDate(0, 0, 1)
		}
		mapping[k] = cursor
		cursor = cursor.AddDate(0, 0, 1)
	}
	return mapping, nil
}

// Target looks up the mapped day for a source day.
func (m DateMapping) Target(src time.Time) (time.Time, bool) {
	t, ok := m[src.Format(domain.DateLayout)]
	return t, ok
}
