/*
Copyright 2024 by Samuel Loewen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package client_test

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/samuellwn/aoc"
	"github.com/samuellwn/aoc/client"
)

const testInput = "Time:        44     80     65     72\nDistance:   208   1581   1050   1102\n"

// fakeSite stands in for adventofcode.com. It only answers requests carrying the right session cookie.
type fakeSite struct {
	downloads atomic.Int32
	answers   chan [2]string
}

func (s *fakeSite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("session")
	if err != nil || cookie.Value != "s3cret" {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, "Puzzle inputs differ by user.  Please log in to get your puzzle input.")
		return
	}
	if r.Header.Get("User-Agent") != client.UserAgent {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/2023/day/6/input":
		s.downloads.Add(1)
		fmt.Fprint(w, testInput)
	case r.Method == http.MethodPost && r.URL.Path == "/2023/day/6/answer":
		s.answers <- [2]string{r.FormValue("level"), r.FormValue("answer")}
		fmt.Fprint(w, `<!DOCTYPE html><html><head><title>Day 6</title></head><body>
<header>Advent of Code</header>
<main>
<article><p>That's the right answer!  You are <em>one gold star</em> closer.</p> <p><a href="/2023/day/6#part2">[Continue to Part Two]</a></p></article>
</main>
</body></html>`)
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T) (*client.Client, *fakeSite, string) {
	t.Helper()
	site := &fakeSite{answers: make(chan [2]string, 1)}
	srv := httptest.NewServer(site)
	t.Cleanup(srv.Close)

	root := t.TempDir()
	c, err := client.New(root, "  s3cret\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	c.BaseURL = srv.URL
	c.HTTP = srv.Client()
	return c, site, root
}

func TestInputIsCached(t *testing.T) {
	c, site, root := newTestClient(t)
	day := aoc.Day{Year: 2023, Day: 6, Part: 1}

	for i := 0; i < 2; i++ {
		input, err := c.Input(day)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if input != testInput {
			t.Errorf("Incorrect input: %q", input)
		}
	}
	// Part two shares the input of part one.
	if _, err := c.Input(aoc.Day{Year: 2023, Day: 6, Part: 2}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n := site.downloads.Load(); n != 1 {
		t.Errorf("Incorrect number of downloads: %v", n)
	}

	path := filepath.Join(root, ".data", "y2023", "d6.txt")
	if c.CachePath(day) != path {
		t.Errorf("Incorrect cache path: %v", c.CachePath(day))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Cache file missing: %v", err)
	}
	if string(data) != testInput {
		t.Errorf("Incorrect cache contents: %q", data)
	}

	// No temp files left lying around.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("Incorrect number of files in the cache: %v", len(entries))
	}
}

func TestInputFromExistingCache(t *testing.T) {
	c, site, _ := newTestClient(t)
	day := aoc.Day{Year: 1000, Day: 100, Part: 1}

	path := c.CachePath(day)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	input, err := c.Input(day)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if input != "test" {
		t.Errorf("Incorrect input: %q", input)
	}
	if n := site.downloads.Load(); n != 0 {
		t.Errorf("Cached input was downloaded anyway.")
	}
}

func TestInputBadStatus(t *testing.T) {
	c, _, _ := newTestClient(t)
	day := aoc.Day{Year: 2023, Day: 7, Part: 1}

	_, err := c.Input(day)
	var bad client.ErrBadStatus
	if !errors.As(err, &bad) {
		t.Fatalf("Expected ErrBadStatus, got %v", err)
	}
	if !strings.Contains(bad.Status, "404") {
		t.Errorf("Incorrect status: %v", bad.Status)
	}
	if _, err := os.Stat(c.CachePath(day)); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("A failed download should not be cached: %v", err)
	}
}

func TestSubmit(t *testing.T) {
	c, site, _ := newTestClient(t)

	text, err := c.Submit(aoc.Day{Year: 2023, Day: 6, Part: 2}, "71503")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	form := <-site.answers
	if form[0] != "2" || form[1] != "71503" {
		t.Errorf("Incorrect form values: %v", form)
	}

	want := "That's the right answer!  You are one gold star closer. [Continue to Part Two]."
	if text != want {
		t.Errorf("Incorrect response text: %q", text)
	}
}

func TestNewClient(t *testing.T) {
	root := t.TempDir()
	if _, err := client.NewClient(root); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a missing session file error, got %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(client.SessionPath(root)), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(client.SessionPath(root), []byte("\n \n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := client.NewClient(root); !errors.Is(err, client.ErrNoSession) {
		t.Errorf("Expected ErrNoSession, got %v", err)
	}

	if err := os.WriteFile(client.SessionPath(root), []byte("abc123\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := client.NewClient(root); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if info, err := os.Stat(filepath.Join(root, ".data")); err != nil || !info.IsDir() {
		t.Errorf("Cache directory was not created: %v", err)
	}
}

func TestMainText(t *testing.T) {
	text, err := client.MainText(strings.NewReader(`<html><body><main>
  <p>You gave an answer too recently.</p>

</main><main>second</main></body></html>`))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if text != "You gave an answer too recently.." {
		t.Errorf("Incorrect text: %q", text)
	}

	_, err = client.MainText(strings.NewReader(`<html><body><p>Log in</p></body></html>`))
	if !errors.Is(err, client.ErrNoMain) {
		t.Errorf("Expected ErrNoMain, got %v", err)
	}
}
