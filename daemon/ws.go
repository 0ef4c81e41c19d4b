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
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/steganon/steganon/utils/jsonw"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// A local CLI daemon has no cross-origin browser clients to defend
	// against; allow any origin rather than force operators to configure one.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// eventsHandler upgrades to a websocket and relays every JobEvent the
// daemon publishes until the client disconnects.
func eventsHandler(d *Daemon) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn().Err(err).Msg("steganon: websocket upgrade failed")
			return
		}
		defer conn.Close()

		ch := d.Subscribe()
		defer func() {
			// Keep draining until pubsub closes ch, so neither Unsub nor a
			// concurrent publish blocks on this departed subscriber.
			go func() {
				for range ch {
				}
			}()
			d.bus.Unsub(ch)
		}()
		for msg := range ch {
			evt, ok := msg.(JobEvent)
			if !ok {
				continue
			}
			b, err := jsonw.Marshal(evt)
			if err != nil {
				log.Warn().Err(err).Msg("steganon: marshalling job event")
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		}
	}
}
