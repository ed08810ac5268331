package htmlstats

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/rinkside/internal/etl"
)

// Team is one franchise entry from the conference/division listing.
// Abbreviation is filled only by the abbreviation variant.
type Team struct {
	Name         string
	Abbreviation string
	Conference   string
	Division     string
}

// abbreviations maps every league franchise's full name to its 3-letter
// code. Montréal appears under both spellings the site has used.
var abbreviations = map[string]string{
	"Anaheim Ducks":         "ANA",
	"Arizona Coyotes":       "ARI",
	"Boston Bruins":         "BOS",
	"Buffalo Sabres":        "BUF",
	"Calgary Flames":        "CGY",
	"Carolina Hurricanes":   "CAR",
	"Chicago Blackhawks":    "CHI",
	"Colorado Avalanche":    "COL",
	"Columbus Blue Jackets": "CBJ",
	"Dallas Stars":          "DAL",
	"Detroit Red Wings":     "DET",
	"Edmonton Oilers":       "EDM",
	"Florida Panthers":      "FLA",
	"Los Angeles Kings":     "LAK",
	"Minnesota Wild":        "MIN",
	"Montreal Canadiens":    "MTL",
	"Montréal Canadiens":    "MTL",
	"Nashville Predators":   "NSH",
	"New Jersey Devils":     "NJD",
	"New York Islanders":    "NYI",
	"New York Rangers":      "NYR",
	"Ottawa Senators":       "OTT",
	"Philadelphia Flyers":   "PHI",
	"Pittsburgh Penguins":   "PIT",
	"San Jose Sharks":       "SJS",
	"Seattle Kraken":        "SEA",
	"St. Louis Blues":       "STL",
	"Tampa Bay Lightning":   "TBL",
	"Toronto Maple Leafs":   "TOR",
	"Vancouver Canucks":     "VAN",
	"Vegas Golden Knights":  "VGK",
	"Washington Capitals":   "WSH",
	"Winnipeg Jets":         "WPG",
}

// ExtractTeams walks the conference sections, their division subsections and
// the team entries within. excludedCity names the not-yet-integrated
// expansion franchise to leave out; the predicate is evaluated per entry so
// it holds wherever the entry sits in the source.
func ExtractTeams(doc *goquery.Document, excludedCity string) ([]Team, error) {
	var teams []Team
	var extractErr error

	doc.Find("section.conference").Each(func(_ int, conference *goquery.Selection) {
		if extractErr != nil {
			return
		}
		conf, err := sectionLabel(conference, "h2", "Conference")
		if err != nil {
			extractErr = err
			return
		}

		conference.Find("div.division").Each(func(_ int, division *goquery.Selection) {
			if extractErr != nil {
				return
			}
			div, err := sectionLabel(division, "h3", "Division")
			if err != nil {
				extractErr = err
				return
			}

			division.Find("a.team-city").Each(func(_ int, entry *goquery.Selection) {
				if extractErr != nil {
					return
				}
				spans := entry.Find("span")
				if spans.Length() < 2 {
					extractErr = etl.New(etl.KindSource, "team entry in %s/%s has %d labels, want city and name", conf, div, spans.Length())
					return
				}
				city := strings.TrimSpace(spans.Eq(0).Text())
				name := strings.TrimSpace(spans.Eq(1).Text())

				if city == excludedCity {
					return
				}

				teams = append(teams, Team{
					Name:       city + " " + name,
					Conference: conf,
					Division:   div,
				})
			})
		})
	})

	if extractErr != nil {
		return nil, extractErr
	}
	if len(teams) == 0 {
		return nil, etl.New(etl.KindSource, "no conference sections found in team listing")
	}
	return teams, nil
}

// ExtractTeamsWithAbbreviations is the abbreviation variant: each team's
// full name is additionally mapped to its 3-letter code. A name the table
// does not know is a source error, not a silent blank.
func ExtractTeamsWithAbbreviations(doc *goquery.Document, excludedCity string) ([]Team, error) {
	teams, err := ExtractTeams(doc, excludedCity)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		abbr, ok := abbreviations[teams[i].Name]
		if !ok {
			return nil, etl.New(etl.KindSource, "no abbreviation known for team %q", teams[i].Name)
		}
		teams[i].Abbreviation = abbr
	}
	return teams, nil
}

// sectionLabel reads a heading like "Eastern Conference" and strips the
// trailing literal to get the bare label.
func sectionLabel(section *goquery.Selection, headingSelector, trailing string) (string, error) {
	heading := section.Find(headingSelector)
	if heading.Length() == 0 {
		return "", etl.New(etl.KindSource, "section missing %s heading", headingSelector)
	}
	label := strings.TrimSpace(heading.First().Text())
	label = strings.TrimSpace(strings.TrimSuffix(label, trailing))
	if label == "" {
		return "", etl.New(etl.KindSource, "empty %s label", trailing)
	}
	return label, nil
}
