package statsapi

// Wire models for the three endpoints consumed. Each response keeps its
// payload under a named top-level collection key.

type teamsResponse struct {
	Teams []teamInfo `json:"teams"`
}

type teamInfo struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"`
	TeamName        string `json:"teamName"`
	LocationName    string `json:"locationName"`
	FirstYearOfPlay string `json:"firstYearOfPlay"`
	OfficialSiteURL string `json:"officialSiteUrl"`
	Division        struct {
		Name string `json:"name"`
	} `json:"division"`
	Conference struct {
		Name string `json:"name"`
	} `json:"conference"`
	Venue struct {
		Name     string `json:"name"`
		City     string `json:"city"`
		TimeZone struct {
			TZ     string `json:"tz"`
			Offset int    `json:"offset"`
		} `json:"timeZone"`
	} `json:"venue"`
}

type rosterResponse struct {
	Roster []rosterEntry `json:"roster"`
}

type rosterEntry struct {
	Person struct {
		ID int `json:"id"`
	} `json:"person"`
}

type peopleResponse struct {
	People []personInfo `json:"people"`
}

type personInfo struct {
	ID                 int     `json:"id"`
	FullName           string  `json:"fullName"`
	PrimaryNumber      string  `json:"primaryNumber"`
	BirthDate          string  `json:"birthDate"`
	BirthCity          string  `json:"birthCity"`
	BirthStateProvince *string `json:"birthStateProvince"`
	BirthCountry       string  `json:"birthCountry"`
	Nationality        string  `json:"nationality"`
	Height             string  `json:"height"`
	Weight             int     `json:"weight"`
	AlternateCaptain   bool    `json:"alternateCaptain"`
	Captain            bool    `json:"captain"`
	Rookie             bool    `json:"rookie"`
	ShootsCatches      string  `json:"shootsCatches"`
	CurrentTeam        struct {
		ID int `json:"id"`
	} `json:"currentTeam"`
	PrimaryPosition struct {
		Type string `json:"type"`
		Name string `json:"name"`
	} `json:"primaryPosition"`
}
