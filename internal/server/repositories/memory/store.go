// Package memory implements the repository contracts over plain maps. A Store
// is not safe for concurrent use; repomanager serializes access to it and
// swaps in a modified clone when a transaction succeeds.
package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/secureshare/internal/common"
	"github.com/dmitrijs2005/secureshare/internal/server/models"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/activities"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/certificates"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/contents"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/pins"
	"github.com/dmitrijs2005/secureshare/internal/server/repositories/sessions"
)

type Store struct {
	contents     map[string]models.Content
	pins         map[string]models.PinCredential // by content id
	lookups      map[string]string               // active lookup key -> content id
	sessions     map[string]models.AccessSession // by session id
	activities   map[string][]models.SuspiciousActivity
	certificates map[string]models.DestructionCertificate // by content id
}

func NewStore() *Store {
	return &Store{
		contents:     map[string]models.Content{},
		pins:         map[string]models.PinCredential{},
		lookups:      map[string]string{},
		sessions:     map[string]models.AccessSession{},
		activities:   map[string][]models.SuspiciousActivity{},
		certificates: map[string]models.DestructionCertificate{},
	}
}

// Clone returns an independent copy. Records are stored by value and pointer
// fields are only ever replaced, never written through, so a shallow copy of
// each record is enough.
func (s *Store) Clone() *Store {
	c := NewStore()
	for k, v := range s.contents {
		c.contents[k] = v
	}
	for k, v := range s.pins {
		c.pins[k] = v
	}
	for k, v := range s.lookups {
		c.lookups[k] = v
	}
	for k, v := range s.sessions {
		c.sessions[k] = v
	}
	for k, v := range s.activities {
		c.activities[k] = append([]models.SuspiciousActivity(nil), v...)
	}
	for k, v := range s.certificates {
		c.certificates[k] = v
	}
	return c
}

func (s *Store) Contents() contents.Repository         { return contentRepo{s} }
func (s *Store) Pins() pins.Repository                 { return pinRepo{s} }
func (s *Store) Sessions() sessions.Repository         { return sessionRepo{s} }
func (s *Store) Activities() activities.Repository     { return activityRepo{s} }
func (s *Store) Certificates() certificates.Repository { return certificateRepo{s} }

type contentRepo struct{ s *Store }

func (r contentRepo) Create(_ context.Context, c *models.Content) error {
	if _, ok := r.s.contents[c.ID]; ok {
		return common.ErrConflict
	}
	r.s.contents[c.ID] = *c
	return nil
}

func (r contentRepo) Get(_ context.Context, id string) (*models.Content, error) {
	c, ok := r.s.contents[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &c, nil
}

func (r contentRepo) GetForUpdate(ctx context.Context, id string) (*models.Content, error) {
	return r.Get(ctx, id)
}

func (r contentRepo) Update(_ context.Context, c *models.Content) error {
	cur, ok := r.s.contents[c.ID]
	if !ok {
		return common.ErrorNotFound
	}
	if c.CurrentDevices > cur.MaxDevices {
		return common.ErrDeviceLimitReached
	}
	cur.CurrentDevices = c.CurrentDevices
	cur.ViewsCount = c.ViewsCount
	cur.Status = c.Status
	cur.StatusChangedAt = c.StatusChangedAt
	cur.TerminationReason = c.TerminationReason
	cur.LastAccessedAt = c.LastAccessedAt
	r.s.contents[c.ID] = cur
	return nil
}

// Delete removes the item together with its children, mirroring ON DELETE
// CASCADE.
func (r contentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.contents[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.contents, id)
	r.s.dropPin(id)
	delete(r.s.activities, id)
	for sid, sess := range r.s.sessions {
		if sess.ContentID == id {
			delete(r.s.sessions, sid)
		}
	}
	return nil
}

func (r contentRepo) ListExpirable(_ context.Context, now time.Time) ([]string, error) {
	var ids []string
	for id, c := range r.s.contents {
		if c.Status == models.StatusActive && c.IsExpired(now) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r contentRepo) ListTerminal(_ context.Context, before time.Time) ([]string, error) {
	var ids []string
	for id, c := range r.s.contents {
		if c.Status.Terminal() && (c.StatusChangedAt == nil || !c.StatusChangedAt.After(before)) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r contentRepo) Stats(_ context.Context) (*models.Stats, error) {
	st := &models.Stats{}
	for _, c := range r.s.contents {
		st.TotalContent++
		if c.Status == models.StatusActive {
			st.ActiveContent++
		}
		switch c.AccessMode {
		case models.AccessModeTimeBased:
			st.TimeBasedContent++
		case models.AccessModeOneTime:
			st.OneTimeContent++
		}
		st.TotalViews += c.ViewsCount
	}
	return st, nil
}

type pinRepo struct{ s *Store }

// dropPin removes the credential of contentID together with its index entry.
func (s *Store) dropPin(contentID string) {
	if p, ok := s.pins[contentID]; ok && s.lookups[p.LookupKey] == contentID {
		delete(s.lookups, p.LookupKey)
	}
	delete(s.pins, contentID)
}

// putPin stores p and keeps the lookup index pointing at active credentials only.
func (s *Store) putPin(p *models.PinCredential) {
	if cur, ok := s.pins[p.ContentID]; ok && s.lookups[cur.LookupKey] == p.ContentID {
		delete(s.lookups, cur.LookupKey)
	}
	s.pins[p.ContentID] = *p
	if p.IsActive {
		s.lookups[p.LookupKey] = p.ContentID
	}
}

func (r pinRepo) lookupTaken(key, contentID string) bool {
	owner, ok := r.s.lookups[key]
	return ok && owner != contentID
}

func (r pinRepo) Create(_ context.Context, p *models.PinCredential) error {
	if _, ok := r.s.pins[p.ContentID]; ok {
		return common.ErrConflict
	}
	if p.IsActive && r.lookupTaken(p.LookupKey, p.ContentID) {
		return common.ErrPinInUse
	}
	r.s.putPin(p)
	return nil
}

func (r pinRepo) GetByContentID(_ context.Context, contentID string) (*models.PinCredential, error) {
	p, ok := r.s.pins[contentID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (r pinRepo) GetActiveByLookup(_ context.Context, lookupKey string) (*models.PinCredential, error) {
	id, ok := r.s.lookups[lookupKey]
	if !ok {
		return nil, common.ErrorNotFound
	}
	p := r.s.pins[id]
	return &p, nil
}

func (r pinRepo) Update(_ context.Context, p *models.PinCredential) error {
	cur, ok := r.s.pins[p.ContentID]
	if !ok || cur.ID != p.ID {
		return common.ErrorNotFound
	}
	if p.IsActive && r.lookupTaken(p.LookupKey, p.ContentID) {
		return common.ErrPinInUse
	}
	r.s.putPin(p)
	return nil
}

func (r pinRepo) DeleteByContentID(_ context.Context, contentID string) error {
	r.s.dropPin(contentID)
	return nil
}

type sessionRepo struct{ s *Store }

func (r sessionRepo) Create(_ context.Context, sess *models.AccessSession) error {
	if _, ok := r.s.sessions[sess.ID]; ok {
		return common.ErrConflict
	}
	for _, cur := range r.s.sessions {
		if cur.ContentID == sess.ContentID && cur.DeviceFingerprint == sess.DeviceFingerprint {
			return common.ErrConflict
		}
	}
	r.s.sessions[sess.ID] = *sess
	return nil
}

func (r sessionRepo) GetByDevice(_ context.Context, contentID, fingerprint string) (*models.AccessSession, error) {
	for _, sess := range r.s.sessions {
		if sess.ContentID == contentID && sess.DeviceFingerprint == fingerprint {
			return &sess, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r sessionRepo) GetByID(_ context.Context, id string) (*models.AccessSession, error) {
	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &sess, nil
}

func (r sessionRepo) Update(_ context.Context, sess *models.AccessSession) error {
	cur, ok := r.s.sessions[sess.ID]
	if !ok {
		return common.ErrorNotFound
	}
	cur.SessionToken = sess.SessionToken
	cur.LastActivity = sess.LastActivity
	cur.ViewCount = sess.ViewCount
	cur.IsActive = sess.IsActive
	cur.IPAddress = sess.IPAddress
	cur.UserAgent = sess.UserAgent
	r.s.sessions[sess.ID] = cur
	return nil
}

func (r sessionRepo) DeleteByContentID(_ context.Context, contentID string) error {
	for id, sess := range r.s.sessions {
		if sess.ContentID == contentID {
			delete(r.s.sessions, id)
		}
	}
	return nil
}

type activityRepo struct{ s *Store }

func (r activityRepo) Create(_ context.Context, a *models.SuspiciousActivity) error {
	if _, ok := r.s.contents[a.ContentID]; !ok {
		return common.ErrorNotFound
	}
	r.s.activities[a.ContentID] = append(r.s.activities[a.ContentID], *a)
	return nil
}

func (r activityRepo) CountSince(_ context.Context, contentID string, since time.Time) (int, error) {
	n := 0
	for _, a := range r.s.activities[contentID] {
		if !a.DetectedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r activityRepo) DeleteByContentID(_ context.Context, contentID string) error {
	delete(r.s.activities, contentID)
	return nil
}

type certificateRepo struct{ s *Store }

func (r certificateRepo) Create(_ context.Context, c *models.DestructionCertificate) error {
	if _, ok := r.s.certificates[c.ContentID]; ok {
		return common.ErrConflict
	}
	r.s.certificates[c.ContentID] = *c
	return nil
}

func (r certificateRepo) GetByContentID(_ context.Context, contentID string) (*models.DestructionCertificate, error) {
	c, ok := r.s.certificates[contentID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &c, nil
}

func (r certificateRepo) Count(_ context.Context) (int, error) {
	return len(r.s.certificates), nil
}
