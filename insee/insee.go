// Package insee retrieves consumer price index series from INSEE, the French
// statistics institute, to estimate the general inflation rate.
package insee

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

// CPI is the idBank of the monthly consumer price index, all households, France.
const CPI = "001759970"

// Series holds the data from an INSEE time series CSV file.
type Series struct {
	Libelle    string
	IDBank     string
	LastUpdate time.Time
	Values     []Observation // Values are sorted by date.
}

// Observation is the value of a series at the end of a period.
type Observation struct {
	Date  time.Time
	Value float64
}

// Client downloads INSEE series.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// NewClient returns a client whose responses are cached on disk for the day.
func NewClient() *Client {
	return &Client{
		HTTP:    daily(),
		BaseURL: "https://bdm.insee.fr/series/",
	}
}

// Series downloads the series idBank between from and to.
func (c *Client) Series(ctx context.Context, idBank string, from, to time.Time) (*Series, error) {
	startQuarter := (int(from.Month())-1)/3 + 1
	endQuarter := (int(to.Month())-1)/3 + 1

	url := fmt.Sprintf("%s%s/csv?lang=fr&ordre=antechronologique&transposition=donneescolonne&periodeDebut=%d&anneeDebut=%d&periodeFin=%d&anneeFin=%d&revision=sansrevisions",
		c.BaseURL,
		idBank,
		startQuarter,
		from.Year(),
		endQuarter,
		to.Year(),
	)
	log.Println("Downloading from INSEE:", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download from INSEE for ID %s: %w", idBank, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download from INSEE for ID %s: received status %s", idBank, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return readArchive(body, idBank)
}

// readArchive extracts the series from the zip archive served by INSEE.
func readArchive(body []byte, idBank string) (*Series, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to open zip archive from INSEE response: %w", err)
	}

	var foundFiles []string
	for _, f := range zipReader.File {
		foundFiles = append(foundFiles, f.Name)
		if f.Name != "valeurs_trimestrielles.csv" && f.Name != "valeurs_mensuelles.csv" {
			continue
		}
		log.Println("Found", f.Name)
		csvFile, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open '%s' from zip archive: %w", f.Name, err)
		}
		defer csvFile.Close()
		return parseSeries(csvFile)
	}
	return nil, fmt.Errorf("could not find a values file (mensuelles or trimestrielles) in downloaded zip file for ID %s (found: %s)", idBank, strings.Join(foundFiles, ", "))
}

// parseInseeDate parses a string like "2025-T2" or "2025-08" into the last
// day of that period.
func parseInseeDate(s string) (time.Time, error) {
	year, period, ok := strings.Cut(s, "-")
	if !ok {
		return time.Time{}, fmt.Errorf("unrecognized insee date format: %q", s)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year in date %q: %w", s, err)
	}

	var month int
	if q, isQuarter := strings.CutPrefix(period, "T"); isQuarter {
		quarter, err := strconv.Atoi(q)
		if err != nil || quarter < 1 || quarter > 4 {
			return time.Time{}, fmt.Errorf("invalid quarter in quarterly date %q", s)
		}
		month = quarter * 3
	} else {
		month, err = strconv.Atoi(period)
		if err != nil || month < 1 || month > 12 {
			return time.Time{}, fmt.Errorf("invalid month in monthly date %q", s)
		}
	}
	// day 0 of the next month is the last day of this one.
	return time.Date(y, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC), nil
}

// parseSeries reads the INSEE CSV format from an io.Reader.
func parseSeries(r io.Reader) (*Series, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) < 4 {
		return nil, fmt.Errorf("not enough records in csv to parse series")
	}
	for i := range 3 {
		if len(records[i]) < 2 {
			return nil, fmt.Errorf("malformed header line %d", i+1)
		}
	}

	series := &Series{
		Libelle: records[0][1],
		IDBank:  records[1][1],
	}
	series.LastUpdate, err = time.Parse("02/01/2006 15:04", records[2][1])
	if err != nil {
		return nil, fmt.Errorf("failed to parse last update date %q: %w", records[2][1], err)
	}

	for _, rec := range records[4:] {
		if len(rec) < 2 || rec[1] == "" {
			continue
		}
		date, err := parseInseeDate(rec[0])
		if err != nil {
			return nil, err
		}
		val, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q for date %q: %w", rec[1], rec[0], err)
		}
		series.Values = append(series.Values, Observation{Date: date, Value: val})
	}
	sort.Slice(series.Values, func(i, j int) bool { return series.Values[i].Date.Before(series.Values[j].Date) })
	return series, nil
}
