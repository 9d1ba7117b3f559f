package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public alquran.cloud API root.
const DefaultBaseURL = "https://api.alquran.cloud/v1"

// Editions requested for every verse: the Uthmani Arabic text and one
// English translation, fetched together in a single call.
const (
	OriginalEdition    = "quran-uthmani"
	TranslationEdition = "en.asad"
)

// ErrMalformedResponse reports an API body that decoded but did not carry
// the two expected text editions.
var ErrMalformedResponse = errors.New("malformed verse response")

// FetchError is a transport-level failure, carrying the HTTP status when
// the service answered with a non-2xx code (StatusCode is 0 for network
// errors that never produced a response).
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("verse service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("verse fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Tag is the categorical revelation origin of a verse.
type Tag int

const (
	TagMeccan Tag = iota
	TagMedinan
)

func (t Tag) String() string {
	if t == TagMedinan {
		return "Medinan"
	}
	return "Meccan"
}

// parseTag maps the API's revelationType to a Tag. Anything unrecognized,
// including an absent field, falls back to Meccan.
func parseTag(s string) Tag {
	if s == "Medinan" {
		return TagMedinan
	}
	return TagMeccan
}

// VerseText is the fetched text of a single verse. One is created per
// selection and replaced wholesale by the next.
type VerseText struct {
	Arabic          string
	Translation     string
	SurahName       string
	SurahNameArabic string
	Revelation      Tag
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

type editionEntry struct {
	Text  string `json:"text"`
	Surah struct {
		EnglishName    string `json:"englishName"`
		Name           string `json:"name"`
		RevelationType string `json:"revelationType"`
	} `json:"surah"`
}

type editionResponse struct {
	Code int            `json:"code"`
	Data []editionEntry `json:"data"`
}

// FetchVerse retrieves the Arabic text and translation of one verse in a
// single call. The first data entry is the original edition, the second
// the translation, in request order.
func (c *Client) FetchVerse(surah, ayah int) (*VerseText, error) {
	ref := fmt.Sprintf("%d:%d", surah, ayah)
	url := fmt.Sprintf("%s/ayah/%s/editions/%s,%s", c.baseURL, ref, OriginalEdition, TranslationEdition)

	log.Debug().Str("ref", ref).Msg("fetching verse")

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug().Str("ref", ref).Int("status", resp.StatusCode).Msg("verse fetch rejected")
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var body editionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(body.Data) < 2 {
		return nil, fmt.Errorf("%w: expected 2 editions, got %d", ErrMalformedResponse, len(body.Data))
	}

	v := &VerseText{
		Arabic:          body.Data[0].Text,
		Translation:     body.Data[1].Text,
		SurahName:       body.Data[0].Surah.EnglishName,
		SurahNameArabic: body.Data[0].Surah.Name,
		Revelation:      parseTag(body.Data[0].Surah.RevelationType),
	}
	return v, nil
}
