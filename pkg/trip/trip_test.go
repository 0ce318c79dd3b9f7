package trip

import (
	"testing"
)

func TestNewDocumentSynthesizesDays(t *testing.T) {
	doc := NewDocument([]string{"2025-12-15", "2025-12-16"})
	if len(doc.Itinerary) != 2 {
		t.Fatalf("expected 2 days, got %d", len(doc.Itinerary))
	}
	day := doc.Day("2025-12-15")
	if day.Date != "2025-12-15" {
		t.Fatalf("expected day to carry its date, got %q", day.Date)
	}
	if day.Activities == nil || len(day.Activities) != 0 {
		t.Fatalf("expected empty activities, got %v", day.Activities)
	}
	if doc.Shortlist == nil || doc.PackingList == nil {
		t.Fatalf("expected empty lists, got nil")
	}
}

func TestAddActivityDefaults(t *testing.T) {
	doc := NewDocument([]string{"2025-12-15"})
	doc = AddActivity(doc, "2025-12-15", ActivityDraft{
		Location: "   ",
		Cost:     "abc",
	})

	day := doc.Day("2025-12-15")
	if len(day.Activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(day.Activities))
	}
	a := day.Activities[0]
	if a.ID == "" {
		t.Fatalf("expected an id to be assigned")
	}
	if a.Location != "Untitled Activity" {
		t.Fatalf("expected default location, got %q", a.Location)
	}
	if a.Time != "00:00" {
		t.Fatalf("expected default time, got %q", a.Time)
	}
	if a.Type != TypeOther {
		t.Fatalf("expected default type, got %q", a.Type)
	}
	if a.CostTWD != 0 {
		t.Fatalf("expected unparsable cost to become 0, got %v", a.CostTWD)
	}
}

func TestAddActivityDoesNotMutateInput(t *testing.T) {
	doc := NewDocument([]string{"2025-12-15"})
	_ = AddActivity(doc, "2025-12-15", ActivityDraft{Location: "Taipei 101"})
	if len(doc.Day("2025-12-15").Activities) != 0 {
		t.Fatalf("expected original document unchanged")
	}
}

func TestDeleteActivityUnknownIDIsNoOp(t *testing.T) {
	doc := NewDocument([]string{"2025-12-15"})
	doc = AddActivity(doc, "2025-12-15", ActivityDraft{Location: "Taipei 101"})
	out := DeleteActivity(doc, "2025-12-15", "nope")
	if len(out.Day("2025-12-15").Activities) != 1 {
		t.Fatalf("expected activity to survive unknown id delete")
	}
	out = DeleteActivity(doc, "2025-12-15", doc.Day("2025-12-15").Activities[0].ID)
	if len(out.Day("2025-12-15").Activities) != 0 {
		t.Fatalf("expected activity removed")
	}
}

func TestCoerceCost(t *testing.T) {
	if got := CoerceCost("500"); got != 500 {
		t.Fatalf("expected 500, got %v", got)
	}
	if got := CoerceCost(" 12.5 "); got != 12.5 {
		t.Fatalf("expected 12.5, got %v", got)
	}
	if got := CoerceCost("abc"); got != 0 {
		t.Fatalf("expected 0 for unparsable cost, got %v", got)
	}
	if got := CoerceCost("-10"); got != 0 {
		t.Fatalf("expected 0 for negative cost, got %v", got)
	}
}

func TestBudgetScenario(t *testing.T) {
	doc := NewDocument([]string{"2025-12-15", "2025-12-16"})
	doc = AddActivity(doc, "2025-12-15", ActivityDraft{Location: "Taipei 101", Type: TypeSite, Cost: "450"})
	doc = AddActivity(doc, "2025-12-15", ActivityDraft{Location: "Din Tai Fung", Type: TypeMeal, Cost: "50"})
	doc = AddActivity(doc, "2025-12-16", ActivityDraft{Location: "HSR to Tainan", Type: TypeTransport, Cost: "1350"})

	if got := DailyTotalCost(doc.Day("2025-12-15")); got != 500 {
		t.Fatalf("expected daily total 500, got %v", got)
	}
	if got := TotalCost(doc); got != 1850 {
		t.Fatalf("expected total 1850, got %v", got)
	}

	totals := CategoryTotals(doc)
	if totals[TypeSite] != 450 || totals[TypeMeal] != 50 || totals[TypeTransport] != 1350 {
		t.Fatalf("unexpected category totals: %v", totals)
	}
	if _, ok := totals[TypeOther]; ok {
		t.Fatalf("expected zero bucket to be omitted: %v", totals)
	}
}

func TestCategoryTotalsFoldsUnknownTypes(t *testing.T) {
	doc := NewDocument([]string{"2025-12-15"})
	doc.Itinerary["2025-12-15"] = DayPlan{
		Date: "2025-12-15",
		Activities: []Activity{
			{ID: "a", Time: "09:00", Location: "Mystery", Type: "SHOPPING", CostTWD: 100},
		},
	}
	totals := CategoryTotals(doc)
	if totals[TypeOther] != 100 {
		t.Fatalf("expected unknown type to fold into OTHER, got %v", totals)
	}
}

func TestSortedActivitiesByTime(t *testing.T) {
	day := DayPlan{
		Date: "2025-12-15",
		Activities: []Activity{
			{ID: "b", Time: "18:00", Location: "Night Market"},
			{ID: "a", Time: "09:00", Location: "Temple"},
		},
	}
	sorted := SortedActivities(day)
	if sorted[0].Time != "09:00" || sorted[1].Time != "18:00" {
		t.Fatalf("expected chronological order, got %v %v", sorted[0].Time, sorted[1].Time)
	}
	if day.Activities[0].Time != "18:00" {
		t.Fatalf("expected input order untouched")
	}
}

func TestNormalizeBackfills(t *testing.T) {
	doc := Document{
		Itinerary: map[string]DayPlan{
			"2025-12-15": {Activities: []Activity{{ID: "a", Type: "shopping"}}},
		},
	}
	out := Normalize(doc)
	if out.Shortlist == nil || out.PackingList == nil {
		t.Fatalf("expected lists to be backfilled")
	}
	day := out.Itinerary["2025-12-15"]
	if day.Date != "2025-12-15" {
		t.Fatalf("expected date backfilled from map key, got %q", day.Date)
	}
	if day.Activities[0].Type != TypeOther {
		t.Fatalf("expected legacy type folded into OTHER, got %q", day.Activities[0].Type)
	}
}

func TestChecklistAddToggleRemove(t *testing.T) {
	list := AddItem(nil, "  travel adapter  ")
	if len(list) != 1 || list[0].Text != "travel adapter" {
		t.Fatalf("expected trimmed item, got %v", list)
	}
	if list[0].Checked {
		t.Fatalf("expected new item unchecked")
	}

	list = AddItem(list, "   ")
	if len(list) != 1 {
		t.Fatalf("expected blank item ignored, got %v", list)
	}

	id := list[0].ID
	list = ToggleItem(list, id)
	if !list[0].Checked {
		t.Fatalf("expected item checked after toggle")
	}
	list = ToggleItem(list, id)
	if list[0].Checked {
		t.Fatalf("expected item unchecked after second toggle")
	}

	list = RemoveItem(list, "nope")
	if len(list) != 1 {
		t.Fatalf("expected unknown id remove to be a no-op")
	}
	list = RemoveItem(list, id)
	if len(list) != 0 {
		t.Fatalf("expected item removed")
	}
}

func TestFindItemByPrefix(t *testing.T) {
	list := AddItem(nil, "Travel adapter")
	list = AddItem(list, "Trail shoes")

	if _, ok := FindItem(list, "tra"); ok {
		t.Fatalf("expected ambiguous prefix to fail")
	}
	item, ok := FindItem(list, "travel")
	if !ok || item.Text != "Travel adapter" {
		t.Fatalf("expected unique prefix match, got %v %v", item, ok)
	}
	item, ok = FindItem(list, list[1].ID)
	if !ok || item.Text != "Trail shoes" {
		t.Fatalf("expected id match, got %v %v", item, ok)
	}
}
