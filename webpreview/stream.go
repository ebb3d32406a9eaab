// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package webpreview

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"time"
)

// client is one running stream.
type client struct {
	refresh chan struct{}
	done    chan struct{}
}

func newClient() *client {
	return &client{refresh: make(chan struct{}, 1), done: make(chan struct{}, 1)}
}

func (c *client) notify() {
	select {
	case c.refresh <- struct{}{}:
	default:
	}
}

func (c *client) stop() {
	select {
	case c.done <- struct{}{}:
	default:
	}
}

// ServeHTTP implements http.Handler.
//
// It streams the picture to GET requests until the client goes away or Halt
// is called. "?format=png" and "?format=jpeg" override the default format.
func (d *Display) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "only GET is supported", http.StatusMethodNotAllowed)
		return
	}
	format := d.format
	if v := r.URL.Query().Get("format"); v != "" {
		f, err := ParseFormat(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		format = f
	}

	pw := newPartWriter(w)
	w.Header().Set("Content-Type", pw.contentType())
	w.Header().Set("Cache-Control", "no-store")

	c := newClient()
	d.mu.Lock()
	d.clients[c] = struct{}{}
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		delete(d.clients, c)
		d.mu.Unlock()
	}()

	ctx := r.Context()
	for {
		sent := time.Now()
		body, err := d.picture(format)
		if err != nil {
			log.Printf("webpreview: %v", err)
			return
		}
		if err := pw.writePart(format.mimeType(), body); err != nil {
			// The client is gone, there is nobody to report to.
			return
		}
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		select {
		case <-c.refresh:
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
		if wait := d.interval - time.Since(sent); wait > 0 {
			t := time.NewTimer(wait)
			select {
			case <-t.C:
			case <-c.done:
				t.Stop()
				return
			case <-ctx.Done():
				t.Stop()
				return
			}
		}
	}
}

// picture returns the encoded picture. The returned slice must not be
// modified.
func (d *Display) picture(f ImageFormat) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if b, ok := d.encoded[f]; ok {
		return b, nil
	}
	b, err := encode(f, d.dc.Image())
	if err != nil {
		return nil, err
	}
	d.encoded[f] = b
	return b, nil
}

// partWriter writes a never ending multipart/x-mixed-replace body.
//
// mime/multipart.Writer only writes the delimiter of a part when the next one
// starts, which would delay every picture by one frame.
type partWriter struct {
	w        io.Writer
	boundary string
	started  bool
	buf      bytes.Buffer
}

func newPartWriter(w io.Writer) *partWriter {
	var b [30]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		panic(err)
	}
	return &partWriter{w: w, boundary: hex.EncodeToString(b[:])}
}

func (p *partWriter) contentType() string {
	return mime.FormatMediaType("multipart/x-mixed-replace", map[string]string{"boundary": p.boundary})
}

// writePart writes a whole part followed by its closing delimiter.
func (p *partWriter) writePart(mimeType string, body []byte) error {
	p.buf.Reset()
	if !p.started {
		fmt.Fprintf(&p.buf, "--%s\r\n", p.boundary)
		p.started = true
	}
	fmt.Fprintf(&p.buf, "Content-Type: %s\r\nContent-Length: %d\r\n\r\n", mimeType, len(body))
	p.buf.Write(body)
	fmt.Fprintf(&p.buf, "\r\n--%s\r\n", p.boundary)
	_, err := p.buf.WriteTo(p.w)
	return err
}
