// Package memory holds mutex-guarded in-memory repositories with the same
// semantics as the Postgres ones. Used by service and router tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"realty-backend/internal/data/entity"
	"realty-backend/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation mimics the error Postgres returns for duplicate keys.
var uniqueViolation = &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}

var (
	_ repository.IdentityRepository = (*IdentityRepository)(nil)
	_ repository.OTPRepository      = (*OTPRepository)(nil)
	_ repository.StaffRepository    = (*StaffRepository)(nil)
	_ repository.ContactRepository  = (*ContactRepository)(nil)
	_ repository.CityRepository     = (*CityRepository)(nil)
	_ repository.ReviewRepository   = (*ReviewRepository)(nil)
	_ repository.BlogRepository     = (*BlogRepository)(nil)
)

// ==================== IDENTITY ====================

type IdentityRepository struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*entity.Identity
}

func NewIdentityRepository() *IdentityRepository {
	return &IdentityRepository{byID: map[uuid.UUID]*entity.Identity{}}
}

func (r *IdentityRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.byID[id]; ok {
		c := *i
		return &c, nil
	}
	return nil, nil
}

func (r *IdentityRepository) FindByMobile(_ context.Context, mobile string) (*entity.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.byID {
		if i.Mobile == mobile {
			c := *i
			return &c, nil
		}
	}
	return nil, nil
}

func (r *IdentityRepository) EnsureByMobile(ctx context.Context, mobile string, now time.Time) (*entity.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.byID {
		if i.Mobile == mobile {
			c := *i
			return &c, nil
		}
	}
	i := &entity.Identity{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Mobile:       mobile,
		IsActive:     true,
	}
	r.byID[i.ID] = i
	c := *i
	return &c, nil
}

func (r *IdentityRepository) CompleteRegistration(_ context.Context, identity *entity.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[identity.ID]
	if !ok {
		return fmt.Errorf("identity %s: %w", identity.ID, repository.ErrNotFound)
	}
	if stored.IsRegistered {
		return fmt.Errorf("identity %s: %w", identity.ID, repository.ErrAlreadyRegistered)
	}
	stored.FirstName = identity.FirstName
	stored.LastName = identity.LastName
	stored.Email = identity.Email
	stored.IsRegistered = true
	stored.LastLoginAt = identity.LastLoginAt
	stored.UpdatedAt = identity.UpdatedAt
	identity.IsRegistered = true
	return nil
}

func (r *IdentityRepository) TouchLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("identity %s: %w", id, repository.ErrNotFound)
	}
	stored.LastLoginAt = &at
	stored.UpdatedAt = at
	return nil
}

// SetActive is a test hook for disabling an identity.
func (r *IdentityRepository) SetActive(id uuid.UUID, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.byID[id]; ok {
		i.IsActive = active
	}
}

// ==================== OTP ====================

type OTPRepository struct {
	mu   sync.Mutex
	rows []*entity.OTP
}

func NewOTPRepository() *OTPRepository {
	return &OTPRepository{}
}

func (r *OTPRepository) Issue(_ context.Context, otp *entity.OTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.rows {
		if o.Mobile == otp.Mobile && o.ValidAt(otp.CreatedAt) {
			o.IsVerified = true
		}
	}
	c := *otp
	r.rows = append(r.rows, &c)
	return nil
}

func (r *OTPRepository) Consume(_ context.Context, mobile, codeHash string, purposes []entity.OTPPurpose, now time.Time) (*entity.OTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var match *entity.OTP
	for _, o := range r.rows {
		if o.Mobile != mobile || o.CodeHash != codeHash || !slices.Contains(purposes, o.Purpose) || !o.ValidAt(now) {
			continue
		}
		if match == nil || o.CreatedAt.After(match.CreatedAt) {
			match = o
		}
	}
	if match == nil {
		return nil, nil
	}
	match.IsVerified = true
	c := *match
	return &c, nil
}

// Pending counts unconsumed, unexpired codes for mobile at now.
func (r *OTPRepository) Pending(mobile string, now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, o := range r.rows {
		if o.Mobile == mobile && o.ValidAt(now) {
			n++
		}
	}
	return n
}

// ==================== STAFF ====================

type StaffRepository struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*entity.StaffUser
}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{byID: map[uuid.UUID]*entity.StaffUser{}}
}

func (r *StaffRepository) Create(_ context.Context, staff *entity.StaffUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byID {
		if s.Username == staff.Username {
			return fmt.Errorf("create staff %s: %w", staff.Username, uniqueViolation)
		}
	}
	c := *staff
	r.byID[staff.ID] = &c
	return nil
}

func (r *StaffRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.StaffUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byID[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, nil
}

func (r *StaffRepository) FindByUsername(_ context.Context, username string) (*entity.StaffUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.byID {
		if s.Username == username {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (r *StaffRepository) TouchLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("staff %s: %w", id, repository.ErrNotFound)
	}
	s.LastLoginAt = &at
	return nil
}

// ==================== CONTACT ====================

type ContactRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Contact
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{rows: map[uuid.UUID]*entity.Contact{}}
}

func (r *ContactRepository) Create(_ context.Context, contact *entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *contact
	r.rows[contact.ID] = &c
	return nil
}

func (r *ContactRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func inWindow(t time.Time, w entity.TimeRange) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.To != nil && !t.Before(*w.To) {
		return false
	}
	return true
}

func (r *ContactRepository) filtered(w entity.TimeRange) []*entity.Contact {
	var out []*entity.Contact
	for _, c := range r.rows {
		if inWindow(c.CreatedAt, w) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *ContactRepository) FindAll(_ context.Context, w entity.TimeRange, limit, offset int) ([]*entity.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return paginate(r.filtered(w), limit, offset), nil
}

func (r *ContactRepository) Count(_ context.Context, w entity.TimeRange) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.filtered(w))), nil
}

func (r *ContactRepository) Update(_ context.Context, contact *entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[contact.ID]; !ok {
		return fmt.Errorf("contact %s: %w", contact.ID, repository.ErrNotFound)
	}
	c := *contact
	r.rows[contact.ID] = &c
	return nil
}

func (r *ContactRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("contact %s: %w", id, repository.ErrNotFound)
	}
	delete(r.rows, id)
	return nil
}

func (r *ContactRepository) MarkRead(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	if !ok {
		return false, nil
	}
	c.Read = true
	return true, nil
}

func (r *ContactRepository) Stats(_ context.Context, w entity.LeadWindows) (*entity.LeadStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s entity.LeadStats
	for _, c := range r.rows {
		at := c.CreatedAt
		if !at.Before(w.TodayStart) && at.Before(w.TomorrowStart()) {
			s.Today++
		}
		if !at.Before(w.YesterdayStart) && at.Before(w.TodayStart) {
			s.Yesterday++
		}
		if !at.Before(w.WeekStart) {
			s.LastWeek++
		}
		if !at.Before(w.MonthStart) {
			s.LastMonth++
		}
		if !c.Read {
			s.Unread++
		}
		s.Total++
	}
	return &s, nil
}

// ==================== CITY ====================

type CityRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.City
}

func NewCityRepository() *CityRepository {
	return &CityRepository{rows: map[uuid.UUID]*entity.City{}}
}

func (r *CityRepository) Create(_ context.Context, city *entity.City) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if strings.EqualFold(c.Name, city.Name) {
			return fmt.Errorf("create city %s: %w", city.Name, uniqueViolation)
		}
	}
	c := *city
	r.rows[city.ID] = &c
	return nil
}

func (r *CityRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *CityRepository) filtered(f repository.CityFilter) []*entity.City {
	var out []*entity.City
	for _, c := range r.rows {
		if f.ActiveOnly && !c.IsActive {
			continue
		}
		if f.Search != nil && !strings.Contains(strings.ToLower(c.Name+" "+c.State), strings.ToLower(*f.Search)) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *CityRepository) FindAll(_ context.Context, f repository.CityFilter, limit, offset int) ([]*entity.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return paginate(r.filtered(f), limit, offset), nil
}

func (r *CityRepository) Count(_ context.Context, f repository.CityFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.filtered(f))), nil
}

func (r *CityRepository) Update(_ context.Context, city *entity.City) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[city.ID]; !ok {
		return fmt.Errorf("city %s: %w", city.ID, repository.ErrNotFound)
	}
	c := *city
	r.rows[city.ID] = &c
	return nil
}

func (r *CityRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("city %s: %w", id, repository.ErrNotFound)
	}
	delete(r.rows, id)
	return nil
}

// ==================== REVIEW ====================

type ReviewRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{rows: map[uuid.UUID]*entity.Review{}}
}

func (r *ReviewRepository) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *review
	r.rows[review.ID] = &c
	return nil
}

func (r *ReviewRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rv, ok := r.rows[id]; ok {
		c := *rv
		return &c, nil
	}
	return nil, nil
}

func (r *ReviewRepository) filtered(featured *bool) []*entity.Review {
	var out []*entity.Review
	for _, rv := range r.rows {
		if featured != nil && rv.Featured != *featured {
			continue
		}
		c := *rv
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *ReviewRepository) FindAll(_ context.Context, featured *bool, limit, offset int) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return paginate(r.filtered(featured), limit, offset), nil
}

func (r *ReviewRepository) Count(_ context.Context, featured *bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.filtered(featured))), nil
}

func (r *ReviewRepository) Update(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[review.ID]; !ok {
		return fmt.Errorf("review %s: %w", review.ID, repository.ErrNotFound)
	}
	c := *review
	r.rows[review.ID] = &c
	return nil
}

func (r *ReviewRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("review %s: %w", id, repository.ErrNotFound)
	}
	delete(r.rows, id)
	return nil
}

func (r *ReviewRepository) GetRatingStats(_ context.Context) (float64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.rows) == 0 {
		return 0, 0, nil
	}
	sum := 0
	for _, rv := range r.rows {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(r.rows)), int64(len(r.rows)), nil
}

// ==================== BLOG ====================

type BlogRepository struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.BlogPost
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{rows: map[uuid.UUID]*entity.BlogPost{}}
}

func (r *BlogRepository) Create(_ context.Context, post *entity.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.Slug == post.Slug {
			return fmt.Errorf("create blog post %s: %w", post.Slug, uniqueViolation)
		}
	}
	c := *post
	r.rows[post.ID] = &c
	return nil
}

func (r *BlogRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.rows[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (r *BlogRepository) FindBySlug(_ context.Context, slug string) (*entity.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if p.Slug == slug {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *BlogRepository) filtered(f repository.BlogFilter) []*entity.BlogPost {
	var out []*entity.BlogPost
	for _, p := range r.rows {
		if f.PublishedOnly && !p.Published {
			continue
		}
		if f.ProjectID != nil && (p.ProjectID == nil || *p.ProjectID != *f.ProjectID) {
			continue
		}
		if f.Search != nil {
			q := strings.ToLower(*f.Search)
			hay := strings.ToLower(p.Title + " " + p.Content + " " + p.Category)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		c := *p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *BlogRepository) FindAll(_ context.Context, f repository.BlogFilter, limit, offset int) ([]*entity.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return paginate(r.filtered(f), limit, offset), nil
}

func (r *BlogRepository) Count(_ context.Context, f repository.BlogFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.filtered(f))), nil
}

func (r *BlogRepository) Update(_ context.Context, post *entity.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[post.ID]; !ok {
		return fmt.Errorf("blog post %s: %w", post.ID, repository.ErrNotFound)
	}
	for id, p := range r.rows {
		if id != post.ID && p.Slug == post.Slug {
			return fmt.Errorf("update blog post %s: %w", post.Slug, uniqueViolation)
		}
	}
	c := *post
	r.rows[post.ID] = &c
	return nil
}

func (r *BlogRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return fmt.Errorf("blog post %s: %w", id, repository.ErrNotFound)
	}
	delete(r.rows, id)
	return nil
}

func (r *BlogRepository) IncrementViews(_ context.Context, id uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return 0, fmt.Errorf("blog post %s: %w", id, repository.ErrNotFound)
	}
	p.Views++
	return p.Views, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
