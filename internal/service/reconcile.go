package service

import "github.com/iffertmedia/dashboard-backend/internal/model"

// Reconcile combines freshly fetched campaigns with the currently held list.
// Matching is by exact title: the sheet regenerates IDs on every fetch, so
// title is the only identity that survives a refresh. Matched campaigns take
// the fresh descriptive fields and keep the local admin-owned fields; fresh
// campaigns with no local match pass through unchanged.
//
// Campaigns added through the admin panel that the sheet does not know about
// are appended at the end so a refresh cannot drop them. Sheet-sourced
// campaigns missing from the fresh fetch are dropped.
func Reconcile(fresh, existing []model.Campaign) []model.Campaign {
	byTitle := make(map[string]model.Campaign, len(existing))
	for _, c := range existing {
		// First occurrence wins when titles collide, same as a linear find.
		if _, ok := byTitle[c.Title]; !ok {
			byTitle[c.Title] = c
		}
	}

	matched := make(map[string]bool, len(fresh))
	merged := make([]model.Campaign, 0, len(fresh))
	for _, f := range fresh {
		prev, ok := byTitle[f.Title]
		if !ok {
			merged = append(merged, f)
			continue
		}
		matched[f.Title] = true

		m := f
		if prev.MoreInfoOptions != nil {
			m.MoreInfoOptions = prev.MoreInfoOptions
		}
		if prev.MoreNotes != "" {
			m.MoreNotes = prev.MoreNotes
		}
		// Status is admin-owned outright; the sheet's value only seeds
		// campaigns the admin has never seen.
		m.IsActive = prev.IsActive
		merged = append(merged, m)
	}

	for _, c := range existing {
		if c.AdminCreated && !matched[c.Title] {
			merged = append(merged, c)
		}
	}
	return merged
}
