package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath    string
	SessionPath   string
	SessionExists bool
	APIBaseURL    string
	Locale        string
	Currency      string
	Theme         string
	LogFile       string
	AppDataDir    string
	LoggedIn      bool
}

func RenderSystemInfo(data SystemInfoItem) error {
	sessionStatus := pterm.Green("Found")
	if !data.SessionExists {
		sessionStatus = pterm.Red("Not Found (Will be created)")
	}

	loginStatus := pterm.Green("Logged in")
	if !data.LoggedIn {
		loginStatus = pterm.Gray("Logged out")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"API Base URL", data.APIBaseURL},
		{"Session Store", data.SessionPath},
		{"Session Store Status", sessionStatus},
		{"Login Status", loginStatus},
		{"Locale", data.Locale},
		{"Currency", data.Currency},
		{"Theme", data.Theme},
		{"Log File", data.LogFile},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
