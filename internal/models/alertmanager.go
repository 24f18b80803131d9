package models

// AlertManagerMessage is the webhook payload the Alertmanager router POSTs to
// receivers. Field names follow the upstream JSON casing and must not change.
type AlertManagerMessage struct {
	Version           string              `json:"version"`
	GroupKey          string              `json:"groupKey"`
	Status            string              `json:"status"` // "firing" or "resolved"
	Receiver          string              `json:"receiver"`
	CommonLabels      map[string]string   `json:"commonLabels"`
	CommonAnnotations map[string]string   `json:"commonAnnotations"`
	ExternalURL       string              `json:"externalURL"` // backlink to the Alertmanager in question
	Alerts            []AlertManagerAlert `json:"alerts"`
}

// AlertManagerAlert is one alert inside a grouped notification. Timestamps are
// kept as the strings Alertmanager sent; the relay never parses them.
type AlertManagerAlert struct {
	Status       string            `json:"status"`
	Labels       map[string]string `json:"labels"`
	Annotations  map[string]string `json:"annotations"`
	StartsAt     string            `json:"startsAt"`
	EndsAt       string            `json:"endsAt"`
	GeneratorURL string            `json:"generatorURL"`
}
