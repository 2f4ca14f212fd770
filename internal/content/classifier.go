// Package content holds the pure classification logic behind the dashboard
// views: the current/archived split, the list filter, and the by-type,
// calendar and archive groupings. Everything here is derived wholesale from
// an already-fetched, schedule-date-ascending item list; nothing mutates.
package content

import (
	"sort"
	"time"

	"github.com/stagelink/approval/backend/internal/models"
)

// FilterAll is the sentinel value meaning "match everything" for a filter
// dimension.
const FilterAll = "all"

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// IsArchived reports whether an item's schedule date falls strictly before
// today (start of day). Comparison is by calendar day: an item scheduled
// today is current, never archived. Schedule dates carry date-only
// semantics and are stored at UTC midnight, so the calendar components are
// read in UTC and placed in the viewer's location rather than converting
// the instant, which would shift the date for viewers west of UTC.
func IsArchived(item models.ContentItem, today time.Time) bool {
	y, m, d := item.ScheduleDate.UTC().Date()
	itemDay := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return itemDay.Before(today)
}

// Split partitions items into current (schedule date >= today) and archived
// (schedule date < today), preserving the input order within each partition.
func Split(items []models.ContentItem, today time.Time) (current, archived []models.ContentItem) {
	for _, item := range items {
		if IsArchived(item, today) {
			archived = append(archived, item)
		} else {
			current = append(current, item)
		}
	}
	return current, archived
}

// Filter holds the list-view predicates. Each field set to FilterAll (or
// left empty) matches every item.
type Filter struct {
	Type   string // content type
	Status string // approval status
	Client string // assignee email
}

func (f Filter) matches(item models.ContentItem) bool {
	if f.Type != "" && f.Type != FilterAll && string(item.ContentType) != f.Type {
		return false
	}
	if f.Status != "" && f.Status != FilterAll && string(item.Status) != f.Status {
		return false
	}
	if f.Client != "" && f.Client != FilterAll {
		if item.AssignedToProfile == nil || item.AssignedToProfile.Email != f.Client {
			return false
		}
	}
	return true
}

// ApplyFilter returns the items matching f, in input order.
func ApplyFilter(items []models.ContentItem, f Filter) []models.ContentItem {
	filtered := make([]models.ContentItem, 0, len(items))
	for _, item := range items {
		if f.matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// TypeGroup is one of the four fixed by-type buckets.
type TypeGroup struct {
	Type  models.ContentType   `json:"type"`
	Items []models.ContentItem `json:"items"`
}

// GroupByType partitions items into exactly four buckets in the fixed
// Post, Story, Reel, TikTok order. Every item lands in exactly one bucket;
// empty buckets are kept so each renders its own empty state.
func GroupByType(items []models.ContentItem) []TypeGroup {
	groups := make([]TypeGroup, len(models.ContentTypes))
	index := make(map[models.ContentType]int, len(models.ContentTypes))
	for i, t := range models.ContentTypes {
		groups[i] = TypeGroup{Type: t, Items: []models.ContentItem{}}
		index[t] = i
	}
	for _, item := range items {
		if i, ok := index[item.ContentType]; ok {
			groups[i].Items = append(groups[i].Items, item)
		}
	}
	return groups
}

// DateGroup is one calendar-view day.
type DateGroup struct {
	Date  string               `json:"date"` // yyyy-MM-dd
	Items []models.ContentItem `json:"items"`
}

// GroupByDate groups items by exact schedule date. Group order is the
// encounter order of the input, which the source query already sorts by
// schedule date ascending; no re-sort happens here.
func GroupByDate(items []models.ContentItem) []DateGroup {
	var groups []DateGroup
	index := make(map[string]int)
	for _, item := range items {
		key := item.ScheduleDate.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup{Date: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// MonthGroup is one month within an archive year.
type MonthGroup struct {
	Month string               `json:"month"` // English month name
	Items []models.ContentItem `json:"items"`
}

// YearGroup is one archive year with its months.
type YearGroup struct {
	Year   int          `json:"year"`
	Months []MonthGroup `json:"months"`
}

// GroupArchive groups archived items by year then month. Years are ordered
// descending; months within a year are in calendar order, newest first, so
// the most recently passed content always renders at the top.
func GroupArchive(items []models.ContentItem) []YearGroup {
	type bucket struct {
		months map[time.Month][]models.ContentItem
	}
	byYear := make(map[int]*bucket)
	var years []int
	for _, item := range items {
		y, m := item.ScheduleDate.Year(), item.ScheduleDate.Month()
		b, ok := byYear[y]
		if !ok {
			b = &bucket{months: make(map[time.Month][]models.ContentItem)}
			byYear[y] = b
			years = append(years, y)
		}
		b.months[m] = append(b.months[m], item)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	groups := make([]YearGroup, 0, len(years))
	for _, y := range years {
		b := byYear[y]
		yg := YearGroup{Year: y}
		for m := time.December; m >= time.January; m-- {
			if items, ok := b.months[m]; ok {
				yg.Months = append(yg.Months, MonthGroup{Month: m.String(), Items: items})
			}
		}
		groups = append(groups, yg)
	}
	return groups
}
