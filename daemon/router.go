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

package daemon

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitRouter builds the gin engine exposing the daemon's hide/extract/
// advance/status API: CORS, then a versioned API group behind the auth
// middleware.
func InitRouter(d *Daemon, jwtSecret []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	v1 := r.Group("/v1")
	if len(jwtSecret) > 0 {
		v1.Use(AuthMiddleware(jwtSecret))
	}

	v1.POST("/jobs", createJobHandler(d))
	v1.POST("/jobs/:id/hide", hideHandler(d))
	v1.POST("/jobs/:id/extract", extractHandler(d))
	v1.POST("/jobs/:id/advance", advanceHandler(d))
	v1.GET("/jobs/:id", statusHandler(d))
	v1.GET("/jobs/:id/render", renderHandler(d))
	v1.GET("/events", eventsHandler(d))

	return r
}

type createJobRequest struct {
	Cover      string   `json:"cover"` // base64
	Codec      string   `json:"codec"`
	Seeds      []string `json:"seeds"`
	UseRawSeed bool     `json:"use_raw_seed"`
}

func createJobHandler(d *Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createJobRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cover, err := base64.StdEncoding.DecodeString(req.Cover)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cover must be base64"})
			return
		}

		seeds := make([][]byte, len(req.Seeds))
		for i, s := range req.Seeds {
			seeds[i] = []byte(s)
		}

		id, err := d.CreateJob(cover, req.Codec, seeds, req.UseRawSeed)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"job_id": id})
	}
}

type hideRequest struct {
	Payload string `json:"payload"` // base64
}

func hideHandler(d *Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req hideRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		payload, err := base64.StdEncoding.DecodeString(req.Payload)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payload must be base64"})
			return
		}

		if err := d.Hide(c.Param("id"), payload); err != nil {
			writeJobError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func extractHandler(d *Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := d.Extract(c.Param("id"))
		if err != nil {
			writeJobError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"payload": base64.StdEncoding.EncodeToString(payload)})
	}
}

func advanceHandler(d *Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.Advance(c.Param("id")); err != nil {
			writeJobError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

func statusHandler(d *Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := d.Status(c.Param("id"))
		if err != nil {
			writeJobError(c, err)
			return
		}
		c.JSON(http.StatusOK, st)
	}
}

func renderHandler(d *Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := d.Render(c.Param("id"))
		if err != nil {
			writeJobError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"image": base64.StdEncoding.EncodeToString(data)})
	}
}

func writeJobError(c *gin.Context, err error) {
	if errors.Is(err, ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}
