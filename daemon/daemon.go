// Copyright 2026 The Steganon Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package daemon implements the optional stegod HTTP service: a thin
// wrapper around engine.Engine that lets a client drive a multi-level
// seed chain across several requests instead of one CLI process.
package daemon

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/cskr/pubsub"
	"github.com/google/uuid"
	"github.com/muesli/cache2go"
	"github.com/rs/zerolog/log"

	"github.com/steganon/steganon/coverstore"
	"github.com/steganon/steganon/engine"
	"github.com/steganon/steganon/imagecodec"
	"github.com/steganon/steganon/model"
	"github.com/steganon/steganon/utils/fingerprint"
	"github.com/steganon/steganon/utils/streams"
)

// TopicJobEvents is the pubsub topic job lifecycle events are published on.
const TopicJobEvents = "jobs"

// ErrJobNotFound is returned when a job ID doesn't match a live job.
var ErrJobNotFound = errors.New("daemon: job not found")

// JobEvent is published to TopicJobEvents on job creation, hide, extract,
// advance and expiry.
type JobEvent struct {
	JobID string
	Kind  string // "created", "hidden", "extracted", "advanced", "expired"
	At    time.Time
}

type job struct {
	id          string
	eng         *engine.Engine
	img         model.Image
	codec       string
	fingerprint []byte
	createdAt   time.Time
	lastTouch   time.Time
}

// Daemon holds every in-flight job and the shared collaborators jobs use:
// a cover store, a pubsub event bus, and a fingerprint cache that avoids
// re-hashing an unchanged cover image on repeated requests.
type Daemon struct {
	mu    sync.Mutex
	jobs  map[string]*job
	store coverstore.Store
	bus   *pubsub.PubSub
	cache *cache2go.CacheTable

	// JobTTL is how long an idle job is kept before the sweep evicts it.
	JobTTL time.Duration
}

// New builds a Daemon backed by store. TTL defaults to 30 minutes if ttl
// is zero.
func New(store coverstore.Store, ttl time.Duration) *Daemon {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Daemon{
		jobs:   make(map[string]*job),
		store:  store,
		bus:    pubsub.New(16),
		cache:  cache2go.Cache("steganon-fingerprints"),
		JobTTL: ttl,
	}
}

// Subscribe returns a channel of JobEvent-carrying messages on
// TopicJobEvents. Callers (notably the websocket relay) must keep draining
// it until they unsubscribe: once its buffer fills, publishing blocks.
func (d *Daemon) Subscribe() chan interface{} {
	return d.bus.Sub(TopicJobEvents)
}

func (d *Daemon) publish(evt JobEvent) {
	d.bus.Pub(evt, TopicJobEvents)
}

// fingerprintCached returns data's multihash fingerprint, reusing a prior
// computation if this exact cover was already fingerprinted recently -
// repeated requests against the same cover (status polling, retries)
// shouldn't re-hash a potentially large image every time.
func (d *Daemon) fingerprintCached(data []byte) ([]byte, error) {
	sum := sha256.Sum256(data)
	key := string(sum[:])

	if item, err := d.cache.Value(key); err == nil {
		return item.Data().([]byte), nil
	}

	fp, err := fingerprint.GetMultihashFingerprint(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	d.cache.Add(key, 10*time.Minute, fp)
	return fp, nil
}

// CreateJob decodes coverData as a PNG/BMP/TIFF cover image, derives the
// seed chain, and registers a new job bound to it.
func (d *Daemon) CreateJob(coverData []byte, codecName string, seeds [][]byte, useRawSeed bool) (string, error) {
	c, err := imagecodec.Get(codecName)
	if err != nil {
		return "", err
	}

	img, err := c.Decode(bytes.NewReader(coverData))
	if err != nil {
		return "", err
	}

	eng, err := engine.New(img, seeds, useRawSeed)
	if err != nil {
		return "", err
	}

	fp, err := d.fingerprintCached(coverData)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	d.mu.Lock()
	d.jobs[id] = &job{id: id, eng: eng, img: img, codec: codecName, fingerprint: fp, createdAt: time.Now(), lastTouch: time.Now()}
	d.mu.Unlock()

	d.publish(JobEvent{JobID: id, Kind: "created", At: time.Now()})
	log.Info().Str("job", id).Msg("steganon: job created")
	return id, nil
}

func (d *Daemon) get(jobID string) (*job, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	j, ok := d.jobs[jobID]
	if !ok {
		return nil, ErrJobNotFound
	}
	j.lastTouch = time.Now()
	return j, nil
}

// Hide embeds payload at the job's current chain level.
func (d *Daemon) Hide(jobID string, payload []byte) error {
	j, err := d.get(jobID)
	if err != nil {
		return err
	}
	if err := j.eng.Hide(payload); err != nil {
		return err
	}
	d.publish(JobEvent{JobID: jobID, Kind: "hidden", At: time.Now()})
	return nil
}

// Extract reads the job's current chain level's payload.
func (d *Daemon) Extract(jobID string) ([]byte, error) {
	j, err := d.get(jobID)
	if err != nil {
		return nil, err
	}
	payload, err := j.eng.Extract()
	if err != nil {
		return nil, err
	}
	d.publish(JobEvent{JobID: jobID, Kind: "extracted", At: time.Now()})
	return payload, nil
}

// Advance moves the job to the next chain level.
func (d *Daemon) Advance(jobID string) error {
	j, err := d.get(jobID)
	if err != nil {
		return err
	}
	if err := j.eng.Next(); err != nil {
		return err
	}
	d.publish(JobEvent{JobID: jobID, Kind: "advanced", At: time.Now()})
	return nil
}

// Status describes a job's current state.
type Status struct {
	JobID     string    `json:"job_id"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

func (d *Daemon) Status(jobID string) (Status, error) {
	j, err := d.get(jobID)
	if err != nil {
		return Status{}, err
	}
	return Status{JobID: j.id, Level: j.eng.Level(), CreatedAt: j.createdAt}, nil
}

// Render encodes the job's current image state back through its codec.
func (d *Daemon) Render(jobID string) ([]byte, error) {
	j, err := d.get(jobID)
	if err != nil {
		return nil, err
	}
	c, err := imagecodec.Get(j.codec)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf, j.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StoreCover persists a cover image's bytes in the daemon's backing
// coverstore and returns its content-addressed ID.
func (d *Daemon) StoreCover(data []byte) (string, error) {
	ssw := streams.NewStreamStatsWriter()
	if _, err := ssw.Write(data); err != nil {
		return "", err
	}
	stats := ssw.Stats()
	log.Debug().
		Int64("size", stats.Size).
		Str("contentType", stats.ContentType).
		Msg("stegod: cover upload received")

	return d.store.Put(bytes.NewReader(data))
}

// FetchCover retrieves a previously stored cover image's bytes by ID.
func (d *Daemon) FetchCover(id string) ([]byte, error) {
	r, err := d.store.Get(id)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Sweep evicts jobs idle longer than JobTTL. cmd/stegod schedules this via
// gocron.
func (d *Daemon) Sweep() {
	d.mu.Lock()
	defer d.mu.Unlock()

	cutoff := time.Now().Add(-d.JobTTL)
	for id, j := range d.jobs {
		if j.lastTouch.Before(cutoff) {
			delete(d.jobs, id)
			d.publish(JobEvent{JobID: id, Kind: "expired", At: time.Now()})
			log.Info().Str("job", id).Msg("steganon: job expired")
		}
	}
}
