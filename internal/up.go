package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// releaseURL points at the latest GitHub release of phaseplot.
var releaseURL = "https://api.github.com/repos/shravanasati/phaseplot/releases/latest"

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

func canonicalVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// CheckForUpdates sends a notice on updateCh if a newer release than currentVersion
// is available, and an empty string otherwise. Network failures are not reported.
// The notice is plain text, coloring it is left to the receiver.
func CheckForUpdates(currentVersion string, updateCh chan<- string) {
	client := http.Client{Timeout: 5 * time.Second}
	updateCh <- checkForUpdates(&client, currentVersion)
}

func checkForUpdates(client *http.Client, currentVersion string) string {
	current := canonicalVersion(currentVersion)
	if current == "" {
		return ""
	}

	res, err := client.Get(releaseURL)
	if err != nil {
		return ""
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return ""
	}

	var latest release
	if err := json.NewDecoder(res.Body).Decode(&latest); err != nil {
		return ""
	}
	latestVersion := canonicalVersion(latest.TagName)
	if latestVersion == "" || semver.Compare(latestVersion, current) <= 0 {
		return ""
	}
	return fmt.Sprintf("\nphaseplot %s is available (you have %s): %s", latestVersion, current, latest.HTMLURL)
}
