package ui

import (
	"fmt"

	"ayat-atlas/internal/api"
	"ayat-atlas/internal/dataset"
	"ayat-atlas/internal/mapview"
	"ayat-atlas/internal/sites"
	"ayat-atlas/internal/theme"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type state int

const (
	stateIdle state = iota
	stateLoading
	stateLoaded
	stateError
)

// VerseFetcher retrieves the text of one verse. Satisfied by *api.Client.
type VerseFetcher interface {
	FetchVerse(surah, ayah int) (*api.VerseText, error)
}

const listWidth = 36

type Model struct {
	fetcher VerseFetcher
	records []dataset.Record
	theme   theme.Theme

	list    list.Model
	spinner spinner.Model
	mapv    *mapview.Map

	state   state
	current *dataset.Record
	verse   *api.VerseText
	site    sites.Site
	errText string

	// Monotonic selection token. Fetch completions carry the token they
	// were issued with; anything but the current one is stale and dropped.
	fetchSeq int

	showLabels bool
	width      int
	height     int
	ready      bool
}

type verseItem struct {
	index int // -1 for the "no verse" entry, else offset into records
	title string
	desc  string
}

func (i verseItem) Title() string       { return i.title }
func (i verseItem) Description() string { return i.desc }
func (i verseItem) FilterValue() string { return i.title + " " + i.desc }

type verseLoadedMsg struct {
	seq   int
	verse *api.VerseText
}

type verseErrMsg struct {
	seq int
	err error
}

func NewModel(records []dataset.Record, fetcher VerseFetcher, th theme.Theme) Model {
	items := make([]list.Item, 0, len(records)+1)
	items = append(items, verseItem{index: -1, title: "No verse selected", desc: "clear the display"})
	for i, r := range records {
		items = append(items, verseItem{
			index: i,
			title: fmt.Sprintf("Surah %d, Ayah %d", r.Surah, r.Ayah),
			desc:  r.Description,
		})
	}

	d := list.NewDefaultDelegate()
	l := list.New(items, d, listWidth, 0)
	l.Title = "Verses"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		fetcher: fetcher,
		records: records,
		theme:   th,
		list:    l,
		spinner: sp,
		mapv:    mapview.New(),
		state:   stateIdle,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func fetchVerse(fetcher VerseFetcher, seq, surah, ayah int) tea.Cmd {
	return func() tea.Msg {
		verse, err := fetcher.FetchVerse(surah, ayah)
		if err != nil {
			return verseErrMsg{seq: seq, err: err}
		}
		return verseLoadedMsg{seq: seq, verse: verse}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			return m.selectCurrent()
		case "esc":
			return m.clearSelection(), nil
		case "i":
			if m.state == stateLoaded {
				m.showLabels = !m.showLabels
				return m, nil
			}
		case "t":
			m.theme = nextTheme(m.theme)
			return m, nil
		case "+", "=":
			if m.state == stateLoaded {
				m.mapv.ZoomIn()
				return m, nil
			}
		case "-", "_":
			if m.state == stateLoaded {
				m.mapv.ZoomOut()
				return m, nil
			}
		case "shift+up":
			if m.state == stateLoaded {
				m.mapv.Pan(0, -1)
				return m, nil
			}
		case "shift+down":
			if m.state == stateLoaded {
				m.mapv.Pan(0, 1)
				return m, nil
			}
		case "shift+left":
			if m.state == stateLoaded {
				m.mapv.Pan(-2, 0)
				return m, nil
			}
		case "shift+right":
			if m.state == stateLoaded {
				m.mapv.Pan(2, 0)
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(listWidth, max(msg.Height-4, 4))
		m.ready = true

	case verseLoadedMsg:
		if msg.seq != m.fetchSeq {
			log.Debug().Int("seq", msg.seq).Int("current", m.fetchSeq).Msg("dropping stale verse result")
			return m, nil
		}
		m.state = stateLoaded
		m.verse = msg.verse
		m.site = sites.ForTag(msg.verse.Revelation)
		m.mapv.SetMarkers(
			mapview.Marker{
				Name:  m.current.TopicLocation,
				Point: m.current.TopicPoint(),
				Glyph: '◉',
				Color: m.theme.TopicMarker,
			},
			mapview.Marker{
				Name:  m.site.Name,
				Point: m.site.Point,
				Glyph: '◎',
				Color: m.theme.RevelationMarker,
			},
		)
		log.Debug().Int("surah", m.current.Surah).Int("ayah", m.current.Ayah).Msg("verse loaded")
		return m, nil

	case verseErrMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.state = stateError
		m.errText = msg.err.Error()
		log.Debug().Err(msg.err).Msg("verse fetch failed")
		return m, nil

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selectCurrent starts a fetch for the highlighted list entry, or clears
// the display for the "no verse" entry. A new selection always describes
// the complete desired target; prior result regions are hidden while the
// fetch is outstanding.
func (m Model) selectCurrent() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(verseItem)
	if !ok {
		return m, nil
	}
	if item.index < 0 {
		return m.clearSelection(), nil
	}
	if item.index >= len(m.records) {
		m.state = stateError
		m.errText = fmt.Sprintf("selection out of range: %d", item.index)
		return m, nil
	}

	rec := m.records[item.index]
	m.current = &rec
	m.state = stateLoading
	m.fetchSeq++
	log.Debug().Int("surah", rec.Surah).Int("ayah", rec.Ayah).Int("seq", m.fetchSeq).Msg("verse selected")
	return m, tea.Batch(
		m.spinner.Tick,
		fetchVerse(m.fetcher, m.fetchSeq, rec.Surah, rec.Ayah),
	)
}

// clearSelection returns to the idle configuration with no result regions
// visible. A pending fetch is not cancelled; its token is now stale and
// its completion will be dropped.
func (m Model) clearSelection() Model {
	m.state = stateIdle
	m.current = nil
	m.verse = nil
	m.errText = ""
	m.showLabels = false
	m.fetchSeq++
	m.mapv.Clear()
	return m
}

// nextTheme cycles through the available themes in order.
func nextTheme(cur theme.Theme) theme.Theme {
	all := theme.AllThemes()
	for i, t := range all {
		if t.Name == cur.Name {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// ThemeName reports the active theme, for persisting across sessions.
func (m Model) ThemeName() string { return m.theme.Name }

// LabelsShown reports whether the marker label popup is visible.
func (m Model) LabelsShown() bool { return m.showLabels }

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
