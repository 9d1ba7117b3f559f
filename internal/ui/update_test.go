// Update-loop tests for the selection state machine and message routing.
package ui

import (
	"errors"
	"strings"
	"testing"

	"ayat-atlas/internal/api"
	"ayat-atlas/internal/dataset"
	"ayat-atlas/internal/geom"
	"ayat-atlas/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
)

type stubFetcher struct {
	verse *api.VerseText
	err   error
	calls int
}

func (s *stubFetcher) FetchVerse(surah, ayah int) (*api.VerseText, error) {
	s.calls++
	return s.verse, s.err
}

func kaabaRecord() dataset.Record {
	return dataset.Record{
		Surah:         2,
		Ayah:          125,
		TopicLocation: "Kaaba - Mecca",
		TopicLat:      21.4225,
		TopicLon:      39.8262,
		Description:   "The Kaaba as a place of return",
	}
}

func meccanVerse() *api.VerseText {
	return &api.VerseText{
		Arabic:          "وَإِذْ جَعَلْنَا ٱلْبَيْتَ",
		Translation:     "And when We made the House a place of return",
		SurahName:       "Al-Baqara",
		SurahNameArabic: "سورة البقرة",
		Revelation:      api.TagMeccan,
	}
}

func newTestModel(records []dataset.Record, f VerseFetcher) Model {
	m := NewModel(records, f, theme.CatppuccinMocha)
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return resized.(Model)
}

func enterKey() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func TestNewModel_ListHasNoneEntryPlusRecords(t *testing.T) {
	m := newTestModel([]dataset.Record{kaabaRecord()}, &stubFetcher{})

	items := m.list.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 list items, got %d", len(items))
	}
	first := items[0].(verseItem)
	if first.index != -1 {
		t.Errorf("expected first item to be the no-verse entry, got index %d", first.index)
	}
	second := items[1].(verseItem)
	if second.title != "Surah 2, Ayah 125" {
		t.Errorf("unexpected item title: %q", second.title)
	}
}

func TestSelect_TransitionsToLoading(t *testing.T) {
	m := newTestModel([]dataset.Record{kaabaRecord()}, &stubFetcher{verse: meccanVerse()})
	m.list.Select(1)

	next, cmd := m.Update(enterKey())
	got := next.(Model)

	if got.state != stateLoading {
		t.Fatalf("expected loading state, got %v", got.state)
	}
	if got.fetchSeq != 1 {
		t.Errorf("expected fetch token 1, got %d", got.fetchSeq)
	}
	if cmd == nil {
		t.Error("expected a fetch command")
	}
}

func TestSelect_LoadedPlacesBothMarkers(t *testing.T) {
	fetcher := &stubFetcher{verse: meccanVerse()}
	m := newTestModel([]dataset.Record{kaabaRecord()}, fetcher)
	m.list.Select(1)

	next, _ := m.Update(enterKey())
	m = next.(Model)

	msg := fetchVerse(fetcher, m.fetchSeq, 2, 125)()
	next, _ = m.Update(msg)
	m = next.(Model)

	if m.state != stateLoaded {
		t.Fatalf("expected loaded state, got %v", m.state)
	}

	marks := m.mapv.Markers()
	if len(marks) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(marks))
	}
	topicAt := geom.Point{Lat: 21.4225, Lon: 39.8262}
	if marks[0].Point != topicAt {
		t.Errorf("topic marker at %v, want %v", marks[0].Point, topicAt)
	}
	// A Meccan verse maps to Mecca's fixed coordinates, which for this
	// record coincide with the topic point.
	if marks[1].Point != topicAt {
		t.Errorf("revelation marker at %v, want %v", marks[1].Point, topicAt)
	}
	if marks[1].Name != "Mecca" {
		t.Errorf("revelation marker named %q, want Mecca", marks[1].Name)
	}
}

func TestFetchError_SurfacesMessageVerbatim(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("verse service returned status 502")}
	m := newTestModel([]dataset.Record{kaabaRecord()}, fetcher)
	m.list.Select(1)

	next, _ := m.Update(enterKey())
	m = next.(Model)

	msg := fetchVerse(fetcher, m.fetchSeq, 2, 125)()
	next, _ = m.Update(msg)
	m = next.(Model)

	if m.state != stateError {
		t.Fatalf("expected error state, got %v", m.state)
	}
	if m.errText != "verse service returned status 502" {
		t.Errorf("error text %q not surfaced verbatim", m.errText)
	}
}

func TestStaleCompletion_IsDropped(t *testing.T) {
	m := newTestModel([]dataset.Record{kaabaRecord()}, &stubFetcher{})
	m.list.Select(1)

	next, _ := m.Update(enterKey())
	m = next.(Model)

	// A second selection supersedes the first before it completes.
	next, _ = m.Update(enterKey())
	m = next.(Model)
	if m.fetchSeq != 2 {
		t.Fatalf("expected fetch token 2, got %d", m.fetchSeq)
	}

	// The first fetch's completion arrives late and must be ignored.
	next, _ = m.Update(verseLoadedMsg{seq: 1, verse: meccanVerse()})
	m = next.(Model)
	if m.state != stateLoading {
		t.Errorf("stale completion changed state to %v", m.state)
	}

	next, _ = m.Update(verseErrMsg{seq: 1, err: errors.New("stale")})
	m = next.(Model)
	if m.state != stateLoading {
		t.Errorf("stale error changed state to %v", m.state)
	}

	// The current token still lands.
	next, _ = m.Update(verseLoadedMsg{seq: 2, verse: meccanVerse()})
	m = next.(Model)
	if m.state != stateLoaded {
		t.Errorf("current completion ignored, state %v", m.state)
	}
}

func TestClearSelection_FromAnyStateYieldsIdle(t *testing.T) {
	for _, start := range []state{stateIdle, stateLoading, stateLoaded, stateError} {
		m := newTestModel([]dataset.Record{kaabaRecord()}, &stubFetcher{verse: meccanVerse()})
		m.state = start
		m.errText = "boom"

		m.list.Select(0) // the no-verse entry
		next, _ := m.Update(enterKey())
		got := next.(Model)

		if got.state != stateIdle {
			t.Errorf("from %v: expected idle, got %v", start, got.state)
		}
		if got.verse != nil || got.current != nil {
			t.Errorf("from %v: result state not torn down", start)
		}
		if len(got.mapv.Markers()) != 0 {
			t.Errorf("from %v: markers survived the clear", start)
		}
		if regionsFor(got.state) != RegionInstructions {
			t.Errorf("from %v: result regions still visible", start)
		}
	}
}

func TestEscClearsSelection(t *testing.T) {
	m := newTestModel([]dataset.Record{kaabaRecord()}, &stubFetcher{})
	m.state = stateError
	m.errText = "boom"

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := next.(Model)
	if got.state != stateIdle {
		t.Errorf("expected idle after esc, got %v", got.state)
	}
}

func TestRegionsTable(t *testing.T) {
	cases := []struct {
		state state
		want  Regions
	}{
		{stateIdle, RegionInstructions},
		{stateLoading, RegionSpinner},
		{stateError, RegionError},
		{stateLoaded, RegionArabic | RegionTranslation | RegionTopic | RegionMap},
	}
	for _, c := range cases {
		if got := regionsFor(c.state); got != c.want {
			t.Errorf("regionsFor(%v) = %b, want %b", c.state, got, c.want)
		}
	}
}

func TestView_LoadedShowsTextAndMap(t *testing.T) {
	fetcher := &stubFetcher{verse: meccanVerse()}
	m := newTestModel([]dataset.Record{kaabaRecord()}, fetcher)
	m.list.Select(1)

	next, _ := m.Update(enterKey())
	m = next.(Model)
	next, _ = m.Update(fetchVerse(fetcher, m.fetchSeq, 2, 125)())
	m = next.(Model)

	out := m.View()
	if !strings.Contains(out, "Al-Baqara") {
		t.Error("loaded view missing surah name")
	}
	if !strings.Contains(out, "a place of return") {
		t.Error("loaded view missing translation")
	}
	if !strings.Contains(out, "Kaaba - Mecca") {
		t.Error("loaded view missing topic panel")
	}
}

func TestView_ErrorShowsOnlyErrorPanel(t *testing.T) {
	m := newTestModel([]dataset.Record{kaabaRecord()}, &stubFetcher{})
	m.state = stateError
	m.errText = "verse service returned status 404"

	out := m.View()
	if !strings.Contains(out, "verse service returned status 404") {
		t.Error("error view missing the message")
	}
	if strings.Contains(out, "Loading verse") {
		t.Error("error view leaked the loading region")
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel([]dataset.Record{kaabaRecord()}, &stubFetcher{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command for q")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected QuitMsg, got %T", msg)
	}
}
