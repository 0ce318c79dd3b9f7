package trip

import "strings"

// AddItem appends a new unchecked checklist item. Blank or
// whitespace-only text is ignored and the list returned unchanged.
func AddItem(list []ChecklistItem, text string) []ChecklistItem {
	text = strings.TrimSpace(text)
	if text == "" {
		return append([]ChecklistItem{}, list...)
	}
	out := append([]ChecklistItem{}, list...)
	return append(out, ChecklistItem{
		ID:   NewID(),
		Text: text,
	})
}

// ToggleItem flips the checked state of the matching item. Unknown ids
// are a no-op.
func ToggleItem(list []ChecklistItem, id string) []ChecklistItem {
	out := append([]ChecklistItem{}, list...)
	for i := range out {
		if out[i].ID == id {
			out[i].Checked = !out[i].Checked
			break
		}
	}
	return out
}

// RemoveItem drops the matching item. Unknown ids are a no-op.
func RemoveItem(list []ChecklistItem, id string) []ChecklistItem {
	out := make([]ChecklistItem, 0, len(list))
	for _, item := range list {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// FindItem resolves a checklist item by id or by a unique case-folded
// text prefix, so CLI users can toggle without pasting ids.
func FindItem(list []ChecklistItem, ref string) (ChecklistItem, bool) {
	for _, item := range list {
		if item.ID == ref {
			return item, true
		}
	}
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return ChecklistItem{}, false
	}
	var match ChecklistItem
	count := 0
	for _, item := range list {
		if strings.HasPrefix(strings.ToLower(item.Text), ref) {
			match = item
			count++
		}
	}
	if count == 1 {
		return match, true
	}
	return ChecklistItem{}, false
}
