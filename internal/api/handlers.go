package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jimezsa/scholarcli/internal/cache"
	"github.com/jimezsa/scholarcli/internal/catalog"
	"github.com/jimezsa/scholarcli/internal/filter"
	"github.com/jimezsa/scholarcli/internal/i18n"
	"github.com/jimezsa/scholarcli/internal/models"
	"github.com/jimezsa/scholarcli/internal/store"
)

// Item is a scholarship decorated with its deadline countdown.
type Item struct {
	models.Scholarship
	DaysLeft *int `json:"days_left,omitempty"`
	Urgent   bool `json:"urgent"`
}

type cachedList struct {
	Records []models.Scholarship `json:"records"`
	Total   int                  `json:"total"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if _, err := s.catalog.List(ctx); err != nil {
		fail(c, Wrap(err, ErrUnavailable, "catalog unavailable"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (s *Server) listScholarships(c *gin.Context) {
	criteria := criteriaFromQuery(c)
	ctx := c.Request.Context()

	key := cache.ListKey(criteria)
	var list cachedList
	err := s.cache.Get(ctx, key, &list)
	hit := err == nil
	s.metrics.RecordCacheLookup(hit)
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache get failed")
	}

	if !hit {
		all, err := s.catalog.List(ctx)
		if err != nil {
			fail(c, Wrap(err, ErrUnavailable, "catalog unavailable"))
			return
		}
		list = cachedList{Records: filter.Apply(all, criteria), Total: len(all)}
		if err := s.cache.Set(ctx, key, list, s.cfg.CacheTTL); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}

	records := list.Records
	if featured, _ := strconv.ParseBool(c.Query("featured")); featured {
		records = filter.Featured(records)
	}

	items := s.decorate(records)
	respond(c, http.StatusOK, items, map[string]any{
		"count":          len(items),
		"total":          list.Total,
		"active_filters": filter.ActiveCount(criteria),
		"filtered":       filter.IsActive(criteria),
		"criteria":       criteria,
		"cached":         hit,
	})
}

func (s *Server) featuredScholarships(c *gin.Context) {
	all, err := s.catalog.List(c.Request.Context())
	if err != nil {
		fail(c, Wrap(err, ErrUnavailable, "catalog unavailable"))
		return
	}
	items := s.decorate(filter.Featured(all))
	respond(c, http.StatusOK, items, map[string]any{"count": len(items)})
}

func (s *Server) getScholarship(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		fail(c, Wrap(err, ErrBadRequest, "id must be a positive integer"))
		return
	}
	record, err := s.catalog.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, Wrap(err, ErrNotFound, "scholarship not found"))
			return
		}
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, s.decorate([]models.Scholarship{record})[0], nil)
}

func (s *Server) options(c *gin.Context) {
	respond(c, http.StatusOK, catalog.AllOptions(), nil)
}

func (s *Server) languages(c *gin.Context) {
	respond(c, http.StatusOK, i18n.Languages, map[string]any{"fallback": i18n.Fallback})
}

// messages serves one translation table. Without a path language the
// Accept-Language header picks it.
func (s *Server) messages(c *gin.Context) {
	code := c.Param("lang")
	if code == "" {
		code = i18n.Detect(c.Query("lang"), c.GetHeader("Accept-Language"))
	}
	lang, ok := i18n.Lookup(code)
	if !ok {
		fail(c, Wrap(nil, ErrNotFound, "unsupported language: "+code))
		return
	}
	respond(c, http.StatusOK, i18n.Table(lang.Code), map[string]any{"language": lang})
}

func (s *Server) contact(c *gin.Context) {
	if s.contacts == nil {
		fail(c, Wrap(nil, ErrUnavailable, "contact form disabled"))
		return
	}
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		fail(c, Wrap(err, ErrValidation, err.Error()))
		return
	}
	msg.ID = uuid.NewString()
	msg.ReceivedAt = s.now().UTC()
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)

	if err := s.contacts.Save(c.Request.Context(), msg); err != nil {
		fail(c, err)
		return
	}

	t := i18n.New(i18n.Detect(c.GetHeader("Accept-Language")))
	respond(c, http.StatusAccepted, gin.H{"id": msg.ID}, map[string]any{"message": t.T(i18n.ContactSuccess)})
}

func (s *Server) decorate(records []models.Scholarship) []Item {
	now := s.now()
	items := make([]Item, 0, len(records))
	for _, record := range records {
		item := Item{Scholarship: record}
		if days, ok := filter.DaysUntil(record.Deadline, now); ok {
			item.DaysLeft = &days
			item.Urgent = filter.Urgent(days)
		}
		items = append(items, item)
	}
	return items
}

// queryParams lists the accepted filter parameters. When several aliases of
// one field are present, the first listed wins.
var queryParams = []string{
	"country",
	"degree_level", "degree", "degree-level", "level",
	"subject", "field",
	"q", "query", "search", "search_query",
}

func criteriaFromQuery(c *gin.Context) models.FilterCriteria {
	criteria := filter.DefaultCriteria()
	query := c.Request.URL.Query()
	set := make(map[filter.Field]bool, 4)
	for _, name := range queryParams {
		values, ok := query[name]
		if !ok || len(values) == 0 {
			continue
		}
		field, err := filter.ParseField(name)
		if err != nil || set[field] {
			continue
		}
		set[field] = true
		criteria, _ = filter.Set(criteria, field, values[0])
	}
	return criteria
}
