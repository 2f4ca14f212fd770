package content

import (
	"reflect"
	"testing"
	"time"

	"github.com/stagelink/approval/backend/internal/models"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

func item(t *testing.T, id string, contentType models.ContentType, status models.ContentStatus, date string) models.ContentItem {
	t.Helper()
	return models.ContentItem{
		ID:           id,
		ContentType:  contentType,
		Status:       status,
		ScheduleDate: mustDate(t, date),
	}
}

func ids(items []models.ContentItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestSplitTodayIsCurrent(t *testing.T) {
	today := mustDate(t, "2024-06-15")
	items := []models.ContentItem{
		item(t, "yesterday", models.TypePost, models.StatusPending, "2024-06-14"),
		item(t, "today", models.TypePost, models.StatusPending, "2024-06-15"),
		item(t, "tomorrow", models.TypePost, models.StatusPending, "2024-06-16"),
	}

	current, archived := Split(items, today)

	if got := ids(current); !reflect.DeepEqual(got, []string{"today", "tomorrow"}) {
		t.Errorf("current = %v, want [today tomorrow]", got)
	}
	if got := ids(archived); !reflect.DeepEqual(got, []string{"yesterday"}) {
		t.Errorf("archived = %v, want [yesterday]", got)
	}
}

func TestSplitIsExclusiveAndExhaustive(t *testing.T) {
	today := mustDate(t, "2024-06-15")
	items := []models.ContentItem{
		item(t, "a", models.TypePost, models.StatusPending, "2023-01-01"),
		item(t, "b", models.TypeStory, models.StatusApproved, "2024-06-15"),
		item(t, "c", models.TypeReel, models.StatusRejected, "2024-06-14"),
		item(t, "d", models.TypeTikTok, models.StatusPending, "2025-12-31"),
	}

	current, archived := Split(items, today)

	if len(current)+len(archived) != len(items) {
		t.Fatalf("partition sizes %d+%d != %d", len(current), len(archived), len(items))
	}
	seen := map[string]int{}
	for _, it := range current {
		seen[it.ID]++
	}
	for _, it := range archived {
		seen[it.ID]++
	}
	for _, it := range items {
		if seen[it.ID] != 1 {
			t.Errorf("item %s appears %d times across partitions, want exactly 1", it.ID, seen[it.ID])
		}
	}
}

func TestSplitIgnoresTimeOfDay(t *testing.T) {
	today := mustDate(t, "2024-06-15")
	late := models.ContentItem{
		ID:           "late-today",
		ScheduleDate: time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC),
	}

	if IsArchived(late, today) {
		t.Error("item scheduled later today classified as archived")
	}
}

func TestApplyFilterSentinels(t *testing.T) {
	items := []models.ContentItem{
		item(t, "a", models.TypePost, models.StatusPending, "2024-06-15"),
		item(t, "b", models.TypeStory, models.StatusApproved, "2024-06-15"),
	}

	for _, f := range []Filter{{}, {Type: FilterAll, Status: FilterAll, Client: FilterAll}} {
		got := ApplyFilter(items, f)
		if len(got) != len(items) {
			t.Errorf("filter %+v kept %d items, want %d", f, len(got), len(items))
		}
	}
}

func TestApplyFilterPredicates(t *testing.T) {
	clientA := &models.Profile{Email: "a@example.com"}
	clientB := &models.Profile{Email: "b@example.com"}
	items := []models.ContentItem{
		{ID: "1", ContentType: models.TypePost, Status: models.StatusPending, AssignedToProfile: clientA},
		{ID: "2", ContentType: models.TypeStory, Status: models.StatusApproved, AssignedToProfile: clientA},
		{ID: "3", ContentType: models.TypePost, Status: models.StatusApproved, AssignedToProfile: clientB},
	}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"by type", Filter{Type: "Post"}, []string{"1", "3"}},
		{"by status", Filter{Status: "Approved"}, []string{"2", "3"}},
		{"by client", Filter{Client: "a@example.com"}, []string{"1", "2"}},
		{"combined", Filter{Type: "Post", Status: "Approved", Client: "b@example.com"}, []string{"3"}},
		{"no match", Filter{Type: "Reel"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(ApplyFilter(items, tt.filter))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ApplyFilter(%+v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestApplyFilterClientWithoutProfile(t *testing.T) {
	items := []models.ContentItem{{ID: "1"}}
	if got := ApplyFilter(items, Filter{Client: "a@example.com"}); len(got) != 0 {
		t.Errorf("item without joined profile matched a client filter: %v", ids(got))
	}
}

func TestGroupByTypeIsFixedPartition(t *testing.T) {
	items := []models.ContentItem{
		item(t, "p1", models.TypePost, models.StatusPending, "2024-06-15"),
		item(t, "r1", models.TypeReel, models.StatusPending, "2024-06-15"),
		item(t, "p2", models.TypePost, models.StatusApproved, "2024-06-16"),
	}

	groups := GroupByType(items)

	if len(groups) != 4 {
		t.Fatalf("got %d buckets, want exactly 4", len(groups))
	}
	wantOrder := []models.ContentType{models.TypePost, models.TypeStory, models.TypeReel, models.TypeTikTok}
	total := 0
	for i, g := range groups {
		if g.Type != wantOrder[i] {
			t.Errorf("bucket %d is %s, want %s", i, g.Type, wantOrder[i])
		}
		if g.Items == nil {
			t.Errorf("bucket %s has a nil item list; empty buckets must still render", g.Type)
		}
		for _, it := range g.Items {
			if it.ContentType != g.Type {
				t.Errorf("item %s (type %s) landed in bucket %s", it.ID, it.ContentType, g.Type)
			}
		}
		total += len(g.Items)
	}
	if total != len(items) {
		t.Errorf("buckets hold %d items, want %d", total, len(items))
	}
}

func TestGroupByDatePreservesSourceOrder(t *testing.T) {
	// Input arrives schedule-date ascending from the query; groups must not
	// be re-sorted.
	items := []models.ContentItem{
		item(t, "a", models.TypePost, models.StatusPending, "2024-06-15"),
		item(t, "b", models.TypeStory, models.StatusPending, "2024-06-15"),
		item(t, "c", models.TypePost, models.StatusPending, "2024-06-17"),
		item(t, "d", models.TypeReel, models.StatusPending, "2024-06-20"),
	}

	groups := GroupByDate(items)

	wantDates := []string{"2024-06-15", "2024-06-17", "2024-06-20"}
	if len(groups) != len(wantDates) {
		t.Fatalf("got %d date groups, want %d", len(groups), len(wantDates))
	}
	for i, g := range groups {
		if g.Date != wantDates[i] {
			t.Errorf("group %d date = %s, want %s", i, g.Date, wantDates[i])
		}
	}
	if got := ids(groups[0].Items); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("same-day group items = %v, want [a b]", got)
	}
}

func TestGroupArchiveYearAndMonth(t *testing.T) {
	items := []models.ContentItem{
		item(t, "mar23", models.TypePost, models.StatusApproved, "2023-03-14"),
		item(t, "nov23", models.TypeStory, models.StatusApproved, "2023-11-02"),
		item(t, "jan24", models.TypeReel, models.StatusRejected, "2024-01-10"),
	}

	groups := GroupArchive(items)

	if len(groups) != 2 {
		t.Fatalf("got %d year groups, want 2", len(groups))
	}
	if groups[0].Year != 2024 || groups[1].Year != 2023 {
		t.Errorf("year order = [%d %d], want [2024 2023]", groups[0].Year, groups[1].Year)
	}

	y2023 := groups[1]
	wantMonths := []string{"November", "March"}
	if len(y2023.Months) != len(wantMonths) {
		t.Fatalf("2023 has %d month groups, want %d", len(y2023.Months), len(wantMonths))
	}
	for i, m := range y2023.Months {
		if m.Month != wantMonths[i] {
			t.Errorf("2023 month %d = %s, want %s", i, m.Month, wantMonths[i])
		}
	}
	if got := ids(y2023.Months[1].Items); !reflect.DeepEqual(got, []string{"mar23"}) {
		t.Errorf("2023/March items = %v, want [mar23]", got)
	}
}

func TestGroupArchiveEmpty(t *testing.T) {
	if groups := GroupArchive(nil); len(groups) != 0 {
		t.Errorf("empty archive produced %d groups", len(groups))
	}
}

func TestClassificationIsDeterministic(t *testing.T) {
	today := mustDate(t, "2024-06-15")
	items := []models.ContentItem{
		item(t, "a", models.TypePost, models.StatusPending, "2023-05-01"),
		item(t, "b", models.TypeStory, models.StatusApproved, "2024-06-15"),
		item(t, "c", models.TypeReel, models.StatusPending, "2024-07-01"),
	}

	c1, a1 := Split(items, today)
	c2, a2 := Split(items, today)
	if !reflect.DeepEqual(ids(c1), ids(c2)) || !reflect.DeepEqual(ids(a1), ids(a2)) {
		t.Error("repeated classification of the same input diverged")
	}
	if !reflect.DeepEqual(GroupArchive(a1), GroupArchive(a2)) {
		t.Error("repeated archive grouping of the same input diverged")
	}
}

func TestSplitTodayIsCurrentAcrossTimezones(t *testing.T) {
	// Schedule dates are stored at UTC midnight; the viewer's location only
	// defines "start of today", never the item's calendar date.
	west := time.FixedZone("UTC-5", -5*3600)
	east := time.FixedZone("UTC+10", 10*3600)

	items := []models.ContentItem{
		item(t, "yesterday", models.TypePost, models.StatusPending, "2024-06-14"),
		item(t, "today", models.TypePost, models.StatusPending, "2024-06-15"),
		item(t, "tomorrow", models.TypePost, models.StatusPending, "2024-06-16"),
	}

	for _, loc := range []*time.Location{west, time.UTC, east} {
		noon := time.Date(2024, 6, 15, 12, 0, 0, 0, loc)
		today := StartOfDay(noon, loc)

		current, archived := Split(items, today)
		if got := ids(current); !reflect.DeepEqual(got, []string{"today", "tomorrow"}) {
			t.Errorf("%s: current = %v, want [today tomorrow]", loc, got)
		}
		if got := ids(archived); !reflect.DeepEqual(got, []string{"yesterday"}) {
			t.Errorf("%s: archived = %v, want [yesterday]", loc, got)
		}
	}
}

func TestStartOfDayRespectsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	// 23:00 UTC on the 14th is already the 15th at UTC+10.
	instant := time.Date(2024, 6, 14, 23, 0, 0, 0, time.UTC)

	got := StartOfDay(instant, loc)
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}
