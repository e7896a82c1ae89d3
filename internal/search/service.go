package search

import (
	"log"
	"strings"
	"sync"

	"github.com/Magneticdud/pixaview/internal/model"
)

// Progress is a status update emitted while a session runs.
type Progress struct {
	Status     model.SearchStatus
	Query      string
	Page       int
	ImageIndex int // 1-based, set while loading images
	ImageCount int
}

// Service handles search operations
type Service struct {
	api     APIClient
	fetcher ImageFetcher

	mu         sync.Mutex
	perPage    int
	generation uint64
	current    *Session
	state      model.PaginationState

	// Callbacks. Invoked from the session goroutine; the UI layer is
	// responsible for marshaling onto its own thread.
	onStatus   func(Progress)
	onResult   func(*model.PageResult)
	onError    func(*Error)
	onFinished func()
}

// NewService creates a new search service
func NewService(api APIClient, fetcher ImageFetcher, perPage int) *Service {
	return &Service{
		api:     api,
		fetcher: fetcher,
		perPage: perPage,
	}
}

// SetCallbacks sets the session event callbacks. onFinished fires exactly
// once per session that runs to completion (success or failure); cancelled
// and superseded sessions deliver nothing further.
func (s *Service) SetCallbacks(
	onStatus func(Progress),
	onResult func(*model.PageResult),
	onError func(*Error),
	onFinished func(),
) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onStatus = onStatus
	s.onResult = onResult
	s.onError = onError
	s.onFinished = onFinished
}

// SetPerPage sets the number of results requested per page for subsequent
// searches; the in-flight session is unaffected.
func (s *Service) SetPerPage(perPage int) {
	if perPage < 1 {
		perPage = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.perPage = perPage
}

// State returns a copy of the pagination state of the last successful fetch.
func (s *Service) State() model.PaginationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start begins a new search for page 1 of the given query. An empty or
// whitespace-only query fails validation and performs no network activity.
func (s *Service) Start(query string) (*Session, error) {
	return s.begin(query, 1)
}

// RequestPage re-enters the search pipeline for an explicit page of an
// existing query. The page is clamped to [1, TotalPages] of the current
// state before dispatch.
func (s *Service) RequestPage(query string, page int) (*Session, error) {
	s.mu.Lock()
	totalPages := s.state.TotalPages
	s.mu.Unlock()

	return s.begin(query, model.ClampPage(page, totalPages))
}

// Cancel stops the current session, if any. No further callbacks are
// delivered for it; the caller restores its own idle state.
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		log.Printf("Cancelling search session %s", s.current.ID)
		s.current.cancel()
	}
}

func (s *Service) begin(query string, page int) (*Session, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errEmptyQuery()
	}

	s.mu.Lock()
	// Supersede any in-flight session; its completions will be discarded.
	if s.current != nil && !s.current.Cancelled() {
		log.Printf("Superseding search session %s", s.current.ID)
		s.current.cancel()
	}
	s.generation++
	sess := newSession(s.generation, query, page)
	s.current = sess
	perPage := s.perPage
	s.mu.Unlock()

	log.Printf("Starting search session %s (gen %d): query=%q page=%d", sess.ID, sess.Generation, query, page)
	go s.run(sess, perPage)

	return sess, nil
}

// run executes one session on its own goroutine. The cancellation flag is
// consulted before the API call, after the response, and before each
// per-image fetch.
func (s *Service) run(sess *Session, perPage int) {
	defer s.deliver(sess, func() {
		if s.onFinished != nil {
			s.onFinished()
		}
	})

	if sess.Cancelled() {
		return
	}
	s.notifyStatus(sess, Progress{Status: model.StatusContacting, Query: sess.Query, Page: sess.Page})
	s.notifyStatus(sess, Progress{Status: model.StatusFetchingPage, Query: sess.Query, Page: sess.Page})

	result, err := s.api.Search(sess.Context(), sess.Query, sess.Page, perPage)
	if sess.Cancelled() {
		return
	}
	if err != nil {
		s.fail(sess, err)
		return
	}

	totalPages := model.TotalPages(result.TotalHits, perPage)
	page := model.ClampPage(sess.Page, totalPages)

	items := make([]model.Thumbnail, 0, len(result.Items))
	for i, record := range result.Items {
		if sess.Cancelled() {
			return
		}
		s.notifyStatus(sess, Progress{
			Status:     model.StatusLoadingImages,
			Query:      sess.Query,
			Page:       sess.Page,
			ImageIndex: i + 1,
			ImageCount: len(result.Items),
		})

		img, ferr := s.fetcher.Fetch(sess.Context(), record.ThumbnailURL)
		if ferr != nil {
			// Non-fatal: skip this item, keep the rest of the page.
			log.Printf("Skipping image %d (id=%d): %v", i, record.ID, ferr)
			continue
		}
		items = append(items, model.Thumbnail{Record: record, Image: img})
	}

	if sess.Cancelled() {
		return
	}

	pageResult := &model.PageResult{
		Query:      sess.Query,
		Page:       page,
		TotalPages: totalPages,
		TotalHits:  result.TotalHits,
		Items:      items,
	}

	// Commit pagination state only if this session is still current.
	s.mu.Lock()
	if s.current == sess {
		s.state = model.PaginationState{
			Query:       sess.Query,
			CurrentPage: page,
			TotalPages:  totalPages,
		}
	}
	s.mu.Unlock()

	s.deliver(sess, func() {
		if s.onResult != nil {
			s.onResult(pageResult)
		}
	})
	s.notifyStatus(sess, Progress{
		Status:     model.StatusDone,
		Query:      sess.Query,
		Page:       page,
		ImageCount: len(items),
	})
}

func (s *Service) fail(sess *Session, err error) {
	classified := Classify(err)
	if classified.Kind == KindCancelled {
		return
	}

	log.Printf("Search session %s failed (%s): %v", sess.ID, classified.Kind, classified.Err)
	s.notifyStatus(sess, Progress{Status: model.StatusError, Query: sess.Query, Page: sess.Page})
	s.deliver(sess, func() {
		if s.onError != nil {
			s.onError(classified)
		}
	})
}

func (s *Service) notifyStatus(sess *Session, p Progress) {
	s.deliver(sess, func() {
		if s.onStatus != nil {
			s.onStatus(p)
		}
	})
}

// deliver invokes fn only when the session is neither cancelled nor
// superseded. This is the generation guard that keeps a slow prior-page
// response from overwriting a newer one.
func (s *Service) deliver(sess *Session, fn func()) {
	if sess.Cancelled() {
		return
	}

	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current != sess {
		return
	}
	fn()
}
