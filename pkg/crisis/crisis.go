// Package crisis maps a country to the crisis helpline shown on the crisis
// pane, falling back to global directories when no local line is known.
package crisis

import (
	"sort"
	"strings"
)

// Link is an external resource.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Helpline is a country specific crisis line.
type Helpline struct {
	Number string `json:"number"`
	Action string `json:"action"`
	URL    string `json:"url"`
	About  string `json:"about"`
}

// Panel is everything the crisis pane shows.
type Panel struct {
	Country     string `json:"country,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Action is the primary call to action and Target where it leads: a
	// tel: URI for a local helpline, otherwise the global directory.
	Action  string `json:"action"`
	Target  string `json:"target"`
	Subtext string `json:"subtext"`
	Links   []Link `json:"links"`
	Local   bool   `json:"local"`
}

const (
	FindAHelpline = "https://findahelpline.com"
	Befrienders   = "https://www.befrienders.org"
)

var helplines = map[string]Helpline{
	"United States":  {Number: "988", Action: "Call or Text 988", URL: "https://988lifeline.org", About: "Free, confidential support 24/7 across the US."},
	"United Kingdom": {Number: "116123", Action: "Call 116 123", URL: "https://www.samaritans.org", About: "Free 24/7 listening support."},
	"Canada":         {Number: "988", Action: "Call or Text 988", URL: "https://988.ca", About: "Free, confidential support 24/7 nationwide."},
	"India":          {Number: "14416", Action: "Call 14416 (Tele-MANAS)", URL: "https://telemanas.mohfw.gov.in", About: "National Tele-Mental Health support in multiple Indian languages."},
	"Australia":      {Number: "131114", Action: "Call 13 11 14", URL: "https://www.lifeline.org.au", About: "Lifeline Australia, 24/7 crisis support."},
	"Nigeria":        {Number: "08062106493", Action: "Call 0806 210 6493", URL: "https://surpin.org", About: "Suicide Research and Prevention Initiative (SURPIN)."},
	"Kenya":          {Number: "1190", Action: "Call 1190", URL: "https://helplinecenter.or.ke", About: "Kenya mental health & crisis helpline."},
}

// Lookup returns the helpline for country, matched case-insensitively.
func Lookup(country string) (Helpline, bool) {
	if h, ok := helplines[country]; ok {
		return h, true
	}
	for name, h := range helplines {
		if strings.EqualFold(name, strings.TrimSpace(country)) {
			return h, true
		}
	}
	return Helpline{}, false
}

// Canonical returns the listed spelling of country, or country unchanged
// when it is not in the list.
func Canonical(country string) string {
	c := strings.TrimSpace(country)
	for _, name := range countries {
		if strings.EqualFold(name, c) {
			return name
		}
	}
	return c
}

// Localize builds the crisis panel for country. An empty or unknown country
// gets the global panel. The global directory links are always present.
func Localize(country string) Panel {
	country = Canonical(country)
	global := []Link{
		{Label: "Find A Helpline (Global Search)", URL: FindAHelpline},
		{Label: "Befrienders Worldwide", URL: Befrienders},
	}

	h, ok := Lookup(country)
	if !ok {
		return Panel{
			Country:     country,
			Title:       "Need Help Now?",
			Description: "We could not find a country-specific helpline yet, but you can still reach global crisis services.",
			Action:      "Open Find A Helpline",
			Target:      FindAHelpline,
			Subtext:     "This site finds crisis lines by country and topic.",
			Links:       global,
		}
	}
	return Panel{
		Country:     country,
		Title:       "Crisis Support (" + country + ")",
		Description: "If you are in crisis or having thoughts of suicide, help is available right now in " + country + ".",
		Action:      h.Action,
		Target:      "tel:" + h.Number,
		Subtext:     h.About,
		Links:       append([]Link{{Label: country + " mental health resources", URL: h.URL}}, global...),
		Local:       true,
	}
}

// Countries returns the selectable countries in alphabetical order.
func Countries() []string {
	out := append([]string(nil), countries...)
	sort.Strings(out)
	return out
}
