package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// newBrowser returns a client with its own cookie jar - one visitor's
// session.
func newBrowser(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{Jar: jar}
}

func getPage(t *testing.T, c *http.Client, path string) (int, string) {
	t.Helper()

	resp, err := c.Get(fixture.baseURL + path)
	require.NoError(t, err)

	return resp.StatusCode, readBody(t, resp)
}

func postForm(t *testing.T, c *http.Client, path string, values url.Values) (int, string) {
	t.Helper()

	resp, err := c.PostForm(fixture.baseURL+path, values)
	require.NoError(t, err)

	return resp.StatusCode, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(body)
}

// authorize gets the client past the code gate with the shared passcode.
func authorize(t *testing.T, c *http.Client) {
	t.Helper()

	status, body := postForm(t, c, "/rsvp", url.Values{"code": {fixture.passcode}})
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "Will you be attending?")
}

func rsvpForm(email string, attending bool, guests ...[2]string) url.Values {
	values := url.Values{
		"attending": {fmt.Sprintf("%t", attending)},
		"email":     {email},
		"notes":     {""},
	}

	for _, guest := range guests {
		values.Add("guest_id", "")
		values.Add("first_name", guest[0])
		values.Add("last_name", guest[1])
	}

	return values
}

func uniqueEmail(t *testing.T) string {
	t.Helper()
	return strings.ToLower(strings.ReplaceAll(t.Name(), "_", "-")) + "@example.com"
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
