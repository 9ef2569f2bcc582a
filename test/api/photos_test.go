package main

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Photos_Page_Requires_Code(t *testing.T) {
	// Arrange
	browser := newBrowser(t)

	// Act
	status, body := getPage(t, browser, "/photos")

	// Assert
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "The code from your invitation")
	require.NotContains(t, body, "photos.example.com")
}

func Test_Photos_Passcode_Unlocks_Album_Link(t *testing.T) {
	// Arrange
	browser := newBrowser(t)

	// Act
	status, body := postForm(t, browser, "/photos", url.Values{"code": {fixture.passcode}})

	// Assert
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "photos.example.com")
}

func Test_Photos_Authorization_Carries_Over_From_Rsvp(t *testing.T) {
	// Arrange
	browser := newBrowser(t)
	authorize(t, browser)

	// Act
	status, body := getPage(t, browser, "/photos")

	// Assert
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "photos.example.com")
}

func Test_Photos_QR_Image_Requires_Authorization(t *testing.T) {
	// Arrange
	browser := newBrowser(t)

	// Act
	resp, err := browser.Get(fixture.baseURL + "/photos/qr.png")
	require.NoError(t, err)
	_ = readBody(t, resp)

	// Assert
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_Photos_QR_Image_Served_As_PNG(t *testing.T) {
	// Arrange
	browser := newBrowser(t)
	authorize(t, browser)

	// Act
	resp, err := browser.Get(fixture.baseURL + "/photos/qr.png")
	require.NoError(t, err)
	body := readBody(t, resp)

	// Assert
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	require.NotEmpty(t, body)
}
