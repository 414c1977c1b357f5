// Package mcp provides the Model Context Protocol server integration for timeline.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/entry"
)

// Service coordinates timeline operations that are shared by the MCP server.
type Service struct {
	Timeline *app.Timeline
}

// ErrEntryNotFound is returned when an entry cannot be located in the timeline.
var ErrEntryNotFound = errors.New("entry not found")

// ErrNotConfirmed is returned when a delete is requested without confirmation.
var ErrNotConfirmed = errors.New("delete not confirmed: set confirm to true")

// AddEntryOptions captures the parameters used to create a new entry.
type AddEntryOptions struct {
	Date        string
	Title       string
	Description string
	Image       string
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
	DateValid   bool   `json:"dateValid"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	ImageShown  bool   `json:"imageShown"`
	Expanded    bool   `json:"expanded"`
}

// NewService builds a service wrapper around the timeline.
func NewService(t *app.Timeline) *Service {
	return &Service{Timeline: t}
}

// ListEntries returns every entry in timeline order.
func (s *Service) ListEntries(ctx context.Context) ([]EntryDTO, error) {
	if s.Timeline == nil {
		return nil, errors.New("timeline is not configured")
	}
	return s.toDTOs(s.Timeline.Entries()), nil
}

// AddEntry persists a new entry using the supplied options.
func (s *Service) AddEntry(ctx context.Context, opts AddEntryOptions) (*EntryDTO, error) {
	if s.Timeline == nil {
		return nil, errors.New("timeline is not configured")
	}
	if strings.TrimSpace(opts.Date) == "" {
		return nil, errors.New("date is required")
	}
	if strings.TrimSpace(opts.Title) == "" {
		return nil, errors.New("title is required")
	}

	e, err := s.Timeline.Add(opts.Date, opts.Title, opts.Description, opts.Image)
	if err != nil {
		return nil, err
	}
	dto := s.toDTO(e)
	return &dto, nil
}

// DeleteEntry removes an entry. The caller must pass confirm; MCP clients
// have no interactive prompt to fall back on.
func (s *Service) DeleteEntry(ctx context.Context, id string, confirm bool) (*EntryDTO, error) {
	e, err := s.findEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	removed, err := s.Timeline.Delete(e.ID, app.ConfirmFunc(func(string) (bool, error) {
		return confirm, nil
	}))
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrNotConfirmed
	}
	dto := s.toDTO(e)
	return &dto, nil
}

// SearchEntries performs a case-insensitive substring match across titles
// and descriptions.
func (s *Service) SearchEntries(ctx context.Context, query string, limit int) ([]EntryDTO, error) {
	if s.Timeline == nil {
		return nil, errors.New("timeline is not configured")
	}
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" {
		return []EntryDTO{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	results := make([]EntryDTO, 0, limit)
	for _, e := range s.Timeline.Entries() {
		if len(results) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(e.Title), q) || strings.Contains(strings.ToLower(e.Description), q) {
			results = append(results, s.toDTO(e))
		}
	}
	return results, nil
}

// EntryByID locates an entry by id and returns the DTO representation.
func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	e, err := s.findEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := s.toDTO(e)
	return &dto, nil
}

func (s *Service) findEntry(ctx context.Context, id string) (*entry.Entry, error) {
	if s.Timeline == nil {
		return nil, errors.New("timeline is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("id is required")
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q", id)
	}
	e, err := s.Timeline.Get(n)
	if errors.Is(err, app.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return e, err
}

func (s *Service) toDTOs(entries []*entry.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, s.toDTO(e))
	}
	return out
}

func (s *Service) toDTO(e *entry.Entry) EntryDTO {
	_, valid := e.When()
	_, shown := entry.SafeImageURL(e.Image)
	dto := EntryDTO{
		ID:          strconv.FormatInt(e.ID, 10),
		Date:        e.Date,
		DisplayDate: e.DisplayDate(),
		DateValid:   valid,
		Title:       e.Title,
		Description: e.Description,
		Image:       e.Image,
		ImageShown:  shown,
	}
	if id, ok := s.Timeline.Expanded(); ok && id == e.ID {
		dto.Expanded = true
	}
	return dto
}
