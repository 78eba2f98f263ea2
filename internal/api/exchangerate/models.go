package exchangerate

// latestRatesResponse represents the v6 "latest" response.
// Successful: {"result":"success","base_code":"USD","conversion_rates":{"USD":1,"EUR":0.92}}
// Failed:     {"result":"error","error-type":"invalid-key"}
type latestRatesResponse struct {
	Result             string              `json:"result"`
	ErrorType          string              `json:"error-type"`
	BaseCode           string              `json:"base_code"`
	TimeLastUpdateUnix int64               `json:"time_last_update_unix"`
	ConversionRates    map[string]*float64 `json:"conversion_rates"`
}

const resultError = "error"
