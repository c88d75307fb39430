package resumetemplates

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev and tests.
type MemoryRepo struct {
	mu        sync.RWMutex
	templates map[string]Template
	ratings   map[string]Rating
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		templates: make(map[string]Template),
		ratings:   make(map[string]Rating),
	}
}

func (r *MemoryRepo) List(ctx context.Context, f Filter) ([]Template, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []Template
	for _, t := range r.templates {
		if !f.IncludeInactive && !t.IsActive {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if len(f.Tags) > 0 && !hasAllTags(t.Tags, f.Tags) {
			continue
		}
		if f.Search != "" && !matchesSearch(t, f.Search) {
			continue
		}
		matched = append(matched, copyTemplate(t))
	}

	sortTemplates(matched, f.Sort)
	total := len(matched)

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []Template{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[id]
	if !ok {
		return Template{}, ErrNotFound
	}
	return copyTemplate(t), nil
}

func (r *MemoryRepo) GetByName(ctx context.Context, name string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.templates {
		if t.Name == name {
			return copyTemplate(t), nil
		}
	}
	return Template{}, ErrNotFound
}

func (r *MemoryRepo) Create(ctx context.Context, t Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.templates {
		if existing.Name == t.Name {
			return ErrAlreadyExists
		}
	}
	r.templates[t.ID] = copyTemplate(t)
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, t Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.templates[t.ID]
	if !ok {
		return ErrNotFound
	}
	t.CreatedAt = existing.CreatedAt
	t.DownloadCount = existing.DownloadCount
	t.RatingAverage = existing.RatingAverage
	t.RatingCount = existing.RatingCount
	r.templates[t.ID] = copyTemplate(t)
	return nil
}

func (r *MemoryRepo) SetActive(ctx context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[id]
	if !ok {
		return ErrNotFound
	}
	t.IsActive = active
	r.templates[id] = t
	return nil
}

func (r *MemoryRepo) UnsetDefaults(ctx context.Context, category, exceptID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.templates {
		if t.Category == category && id != exceptID && t.IsDefault {
			t.IsDefault = false
			r.templates[id] = t
		}
	}
	return nil
}

func (r *MemoryRepo) IncrementDownloads(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[id]
	if !ok {
		return ErrNotFound
	}
	t.DownloadCount++
	r.templates[id] = t
	return nil
}

func (r *MemoryRepo) SetRatingStats(ctx context.Context, id string, average float64, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.templates[id]
	if !ok {
		return ErrNotFound
	}
	t.RatingAverage = average
	t.RatingCount = count
	r.templates[id] = t
	return nil
}

func (r *MemoryRepo) UpsertRating(ctx context.Context, rating Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.ratings {
		if existing.TemplateID != rating.TemplateID {
			continue
		}
		if samePrincipal(existing, rating) {
			rating.ID = existing.ID
			rating.CreatedAt = existing.CreatedAt
			r.ratings[id] = rating
			return nil
		}
	}
	r.ratings[rating.ID] = rating
	return nil
}

func (r *MemoryRepo) ListRatings(ctx context.Context, templateID string, limit, offset int) ([]Rating, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []Rating
	for _, rating := range r.ratings {
		if rating.TemplateID == templateID && !rating.Reported {
			matched = append(matched, rating)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := len(matched)

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []Rating{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *MemoryRepo) RatingStats(ctx context.Context, templateID string) (float64, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sum, count := 0, 0
	for _, rating := range r.ratings {
		if rating.TemplateID == templateID && !rating.Reported {
			sum += rating.Score
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func samePrincipal(a, b Rating) bool {
	if b.UserID != "" {
		return a.UserID == b.UserID
	}
	if b.SessionID != "" {
		return a.UserID == "" && a.SessionID == b.SessionID
	}
	return false
}

func hasAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func matchesSearch(t Template, search string) bool {
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(t.Name), s) ||
		strings.Contains(strings.ToLower(t.DisplayName), s) ||
		strings.Contains(strings.ToLower(t.Description), s)
}

func sortTemplates(ts []Template, by string) {
	switch by {
	case "rating":
		sort.Slice(ts, func(i, j int) bool { return ts[i].RatingAverage > ts[j].RatingAverage })
	case "downloads":
		sort.Slice(ts, func(i, j int) bool { return ts[i].DownloadCount > ts[j].DownloadCount })
	case "name":
		sort.Slice(ts, func(i, j int) bool { return ts[i].Name < ts[j].Name })
	default:
		sort.Slice(ts, func(i, j int) bool { return ts[i].CreatedAt.After(ts[j].CreatedAt) })
	}
}

func copyTemplate(t Template) Template {
	cp := t
	cp.Tags = append([]string(nil), t.Tags...)
	cp.Data.SectionOrder = append([]string(nil), t.Data.SectionOrder...)
	if t.Data.SectionVisibility != nil {
		vis := make(map[string]bool, len(t.Data.SectionVisibility))
		for k, v := range t.Data.SectionVisibility {
			vis[k] = v
		}
		cp.Data.SectionVisibility = vis
	}
	return cp
}

var _ Repo = (*MemoryRepo)(nil)
