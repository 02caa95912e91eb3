// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-remote-config/internal/config"
	"github.com/MKhiriev/go-remote-config/internal/logger"
	"github.com/MKhiriev/go-remote-config/internal/metrics"
	"github.com/MKhiriev/go-remote-config/internal/utils"
	"github.com/MKhiriev/go-remote-config/models"
	"github.com/fsnotify/fsnotify"
	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// Publish results reported to metrics.
const (
	publishOK      = "ok"
	publishInvalid = "invalid"
	publishError   = "error"
)

// templateService serves the template file at path. Reads go through an
// atomically swapped pointer; publishes and reloads are serialized by mu.
type templateService struct {
	path     string
	debounce time.Duration

	mu      sync.Mutex
	current atomic.Pointer[models.PublishedTemplate]

	now    func() time.Time
	logger *logger.Logger
}

// NewTemplateService loads the template file named by cfg. A missing file
// starts an empty template at version 0; a malformed one is an error.
func NewTemplateService(cfg config.ServerTemplate, logger *logger.Logger) (TemplateService, error) {
	if cfg.Path == "" {
		return nil, ErrTemplatePathNotGiven
	}

	s := &templateService{
		path:     filepath.Clean(cfg.Path),
		debounce: cfg.ReloadDebounce,
		now:      time.Now,
		logger:   logger,
	}

	published, err := s.readFile()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn().Str("path", s.path).Msg("template file not found, serving an empty template")
		published, err = newPublishedTemplate(models.Template{})
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	s.install(published)
	metrics.RecordTemplateReload(true, published.Template.Version)
	logger.Info().
		Str("path", s.path).
		Int64("version", published.Template.Version).
		Int("values", len(published.Values)).
		Msg("template loaded")

	return s, nil
}

func (s *templateService) Current() models.PublishedTemplate {
	return *s.current.Load()
}

func (s *templateService) Publish(ctx context.Context, values map[string]models.Value) (models.PublishedTemplate, error) {
	log := logger.FromContext(ctx)

	if len(values) == 0 {
		metrics.RecordTemplatePublish(publishInvalid)
		return models.PublishedTemplate{}, fmt.Errorf("%w: %w", ErrInvalidTemplate, ErrNoValuesToPublish)
	}

	entries := models.ValuesToEntries(values)
	if _, err := models.EntriesToValues(entries); err != nil {
		metrics.RecordTemplatePublish(publishInvalid)
		log.Err(err).Msg("rejected invalid publish request")
		return models.PublishedTemplate{}, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := models.Template{
		Version:   s.current.Load().Template.Version + 1,
		UpdatedAt: s.now().UTC().Truncate(time.Second),
		Entries:   entries,
	}

	published, err := newPublishedTemplate(next)
	if err != nil {
		metrics.RecordTemplatePublish(publishInvalid)
		return models.PublishedTemplate{}, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}

	if err = s.writeFile(next); err != nil {
		metrics.RecordTemplatePublish(publishError)
		log.Err(err).Str("path", s.path).Msg("failed to write template file")
		return models.PublishedTemplate{}, fmt.Errorf("%w: %w", ErrTemplateWriteFailed, err)
	}

	s.install(published)
	metrics.RecordTemplatePublish(publishOK)
	metrics.TemplateVersion.Set(float64(next.Version))
	log.Info().Int64("version", next.Version).Int("values", len(values)).Msg("template published")

	return published, nil
}

func (s *templateService) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	published, err := s.readFile()
	if err != nil {
		metrics.RecordTemplateReload(false, 0)
		s.logger.Err(err).Str("path", s.path).Msg("template reload failed, keeping the served template")
		return err
	}

	cur := s.current.Load()
	if cur.ETag == published.ETag {
		return nil
	}

	s.install(published)
	metrics.RecordTemplateReload(true, published.Template.Version)
	s.logger.Info().
		Int64("version", published.Template.Version).
		Int64("previous_version", cur.Template.Version).
		Msg("template reloaded")
	return nil
}

// Watch watches the directory of the template file: atomic replacement
// swaps the inode, so a watch on the file itself would be lost after the
// first publish.
func (s *templateService) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch template dir: %w", err)
	}

	s.logger.Info().Str("path", s.path).Msg("watching template file for changes")

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debounce.Reset(s.debounce)
			}

		case <-debounce.C:
			_ = s.Reload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Err(err).Msg("template watcher error")
		}
	}
}

func (s *templateService) install(p models.PublishedTemplate) {
	s.current.Store(&p)
}

func (s *templateService) readFile() (models.PublishedTemplate, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.PublishedTemplate{}, fmt.Errorf("read template %s: %w", s.path, err)
	}

	var tmpl models.Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&tmpl); err != nil {
		return models.PublishedTemplate{}, fmt.Errorf("%w: decode %s: %w", ErrInvalidTemplate, s.path, err)
	}

	published, err := newPublishedTemplate(tmpl)
	if err != nil {
		return models.PublishedTemplate{}, fmt.Errorf("%w: %s: %w", ErrInvalidTemplate, s.path, err)
	}
	return published, nil
}

func (s *templateService) writeFile(tmpl models.Template) (err error) {
	pending, err := renameio.NewPendingFile(s.path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending template file: %w", err)
	}
	defer func() {
		if cerr := pending.Cleanup(); cerr != nil {
			s.logger.Debug().Err(cerr).Msg("cleanup pending template file")
		}
	}()

	enc := yaml.NewEncoder(pending)
	enc.SetIndent(2)
	if err = enc.Encode(tmpl); err != nil {
		return fmt.Errorf("encode template: %w", err)
	}
	if err = enc.Close(); err != nil {
		return fmt.Errorf("encode template: %w", err)
	}

	if err = pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace template file: %w", err)
	}
	return nil
}

// newPublishedTemplate validates tmpl and pre-encodes its response body.
func newPublishedTemplate(tmpl models.Template) (models.PublishedTemplate, error) {
	values, err := models.EntriesToValues(tmpl.Entries)
	if err != nil {
		return models.PublishedTemplate{}, err
	}

	body, err := json.Marshal(models.FetchResponse{Version: tmpl.Version, Values: values})
	if err != nil {
		return models.PublishedTemplate{}, fmt.Errorf("encode response body: %w", err)
	}

	return models.PublishedTemplate{
		Template: tmpl,
		Values:   values,
		Body:     body,
		ETag:     utils.QuoteETag(utils.Digest(body)),
	}, nil
}
