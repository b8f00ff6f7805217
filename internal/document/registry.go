package document

import (
	"sync"

	ierr "github.com/quotedesk/quotedesk/internal/errors"
	"github.com/quotedesk/quotedesk/internal/types"
)

// SectionRegistry holds the rendered bytes of each previewed document
// section, per quotation. Pack assembly reads annexure content from here:
// a section that was never previewed is absent, and assembly fails fast
// naming it. Safe for concurrent use.
type SectionRegistry struct {
	mu       sync.RWMutex
	sections map[string]map[types.DocumentSection][]byte
}

// NewSectionRegistry creates an empty registry.
func NewSectionRegistry() *SectionRegistry {
	return &SectionRegistry{
		sections: make(map[string]map[types.DocumentSection][]byte),
	}
}

// Put stores the rendered bytes for a section of a quotation, replacing any
// previous render.
func (r *SectionRegistry) Put(quotationID string, section types.DocumentSection, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sections[quotationID] == nil {
		r.sections[quotationID] = make(map[types.DocumentSection][]byte)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	r.sections[quotationID][section] = buf
}

// Get returns the rendered bytes for a section, or a not-found error naming
// the section when it has never been rendered.
func (r *SectionRegistry) Get(quotationID string, section types.DocumentSection) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if data, ok := r.sections[quotationID][section]; ok {
		buf := make([]byte, len(data))
		copy(buf, data)
		return buf, nil
	}
	return nil, ierr.NewErrorf("section %q has not been rendered", section.DisplayName()).
		WithHintf("Open the %s preview before generating the agreement pack", section.DisplayName()).
		WithReportableDetails(map[string]interface{}{
			"quotation_id": quotationID,
			"section":      section,
		}).
		Mark(ierr.ErrInvalidOperation)
}

// Has reports whether a section has been rendered for a quotation.
func (r *SectionRegistry) Has(quotationID string, section types.DocumentSection) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sections[quotationID][section]
	return ok
}

// Invalidate drops every rendered section of a quotation. Called whenever
// the quotation's pricing inputs change so stale previews never end up in
// a pack.
func (r *SectionRegistry) Invalidate(quotationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sections, quotationID)
}
