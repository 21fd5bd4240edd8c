/*
Copyright 2021 by Milo Christiansen
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

/*
Package client fetches puzzle inputs from adventofcode.com and submits answers.

Inputs never change once a puzzle is released, so every input is cached on disk the first time it is downloaded
and the site is never asked for it again.
*/
package client

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/samuellwn/aoc"
	"github.com/teris-io/shortid"
	"golang.org/x/net/html"
)

// DefaultBaseURL is where the real site lives.
const DefaultBaseURL = "https://adventofcode.com"

// UserAgent is sent with every request, the site operators ask that automated tools identify themselves.
const UserAgent = "github.com/samuellwn/aoc by samuellwn"

// Client downloads and caches puzzle inputs and submits answers. It is safe to share between goroutines.
type Client struct {
	// BaseURL is the site root, without a trailing slash. Tests point this at a local server.
	BaseURL string

	// HTTP is the client used for all requests.
	HTTP *http.Client

	session string
	cache   string // Root of the input cache, the .data directory.

	// Held while reading or writing the cache so two callers never download the same input at once.
	lock sync.Mutex
}

// Returned by NewClient and New if the session token is blank.
var ErrNoSession = errors.New("Session token is empty.")

// Returned by MainText if the page has no main element, which usually means the session expired and the site sent
// back a login page.
var ErrNoMain = errors.New("Response has no <main> element.")

// ErrBadStatus is returned when the site answers with anything other than 200 OK.
type ErrBadStatus struct {
	URL    string
	Status string
}

func (err ErrBadStatus) Error() string {
	return fmt.Sprintf("Request to %v failed: %v", err.URL, err.Status)
}

// SessionPath returns where NewClient expects to find the session token under root.
func SessionPath(root string) string {
	return filepath.Join(root, "aoc-client", ".session")
}

// NewClient returns a client with its session token read from <root>/aoc-client/.session and its input cache in
// <root>/.data.
func NewClient(root string) (*Client, error) {
	token, err := os.ReadFile(SessionPath(root))
	if err != nil {
		return nil, err
	}
	return New(root, string(token))
}

// New returns a client using the given session token, with its input cache in <root>/.data.
func New(root, session string) (*Client, error) {
	session = strings.TrimSpace(session)
	if session == "" {
		return nil, ErrNoSession
	}

	cache := filepath.Join(root, ".data")
	err := os.MkdirAll(cache, 0755)
	if err != nil {
		return nil, err
	}

	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		session: session,
		cache:   cache,
	}, nil
}

// CachePath returns the cache file for a day's input. The part does not matter, both parts share one input.
func (c *Client) CachePath(d aoc.Day) string {
	return filepath.Join(c.cache, fmt.Sprintf("y%d", d.Year), fmt.Sprintf("d%d.txt", d.Day))
}

// Input returns the puzzle input for d, from the cache if possible, downloading and caching it otherwise.
func (c *Client) Input(d aoc.Day) (string, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	input, err := c.cachedInput(d)
	if err == nil {
		return input, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	input, err = c.downloadInput(d)
	if err != nil {
		return "", err
	}

	err = c.cacheInput(d, input)
	if err != nil {
		return "", err
	}
	return input, nil
}

// Submit posts an answer for d and returns the text of the site's response, something like "That's the right
// answer! ...".
func (c *Client) Submit(d aoc.Day, answer string) (string, error) {
	form := url.Values{}
	form.Set("level", strconv.Itoa(d.Part))
	form.Set("answer", answer)

	req, err := c.request(http.MethodPost, fmt.Sprintf("%s/%d/day/%d/answer", c.BaseURL, d.Year, d.Day), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer body.Close()

	return MainText(body)
}

func (c *Client) cachedInput(d aoc.Day) (string, error) {
	data, err := os.ReadFile(c.CachePath(d))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var tempNameService <-chan string

func init() {
	c := make(chan string)
	tempNameService = c

	go func() {
		idsource := shortid.MustNew(16, shortid.DefaultABC, uint64(time.Now().UnixNano()))

		for {
			c <- idsource.MustGenerate()
		}
	}()
}

// cacheInput writes to a uniquely named temp file first and renames it into place, so a crash halfway through never
// leaves a truncated input behind to be trusted forever.
func (c *Client) cacheInput(d aoc.Day, input string) error {
	path := c.CachePath(d)
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return err
	}

	tmp := path + "." + <-tempNameService + ".tmp"
	err = os.WriteFile(tmp, []byte(input), 0644)
	if err != nil {
		return err
	}

	err = os.Rename(tmp, path)
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func (c *Client) downloadInput(d aoc.Day) (string, error) {
	req, err := c.request(http.MethodGet, fmt.Sprintf("%s/%d/day/%d/input", c.BaseURL, d.Year, d.Day), nil)
	if err != nil {
		return "", err
	}

	body, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("reading input for %v: %w", d, err)
	}
	return string(data), nil
}

func (c *Client) request(method, u string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	req.Header.Set("User-Agent", UserAgent)
	return req, nil
}

// do sends req and returns the body of a 200 response. Anything else is an ErrBadStatus.
func (c *Client) do(req *http.Request) (io.ReadCloser, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, ErrBadStatus{URL: req.URL.String(), Status: resp.Status}
	}
	return resp.Body, nil
}

// MainText returns all the text inside the first <main> element of an HTML page, trimmed, with a period on the end.
func MainText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	node := findElement(doc, "main")
	if node == nil {
		return "", ErrNoMain
	}

	var text strings.Builder
	collectText(node, &text)
	return strings.TrimSpace(text.String()) + ".", nil
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func collectText(n *html.Node, buf *strings.Builder) {
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, buf)
	}
}
