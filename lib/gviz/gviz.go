// Package gviz fetches tabs of a Google spreadsheet through the GViz
// JSONP endpoint (or the CSV export endpoint) and hands them back as
// plain rectangular string grids. No semantic interpretation happens
// here: parsers downstream receive [][]string and nothing else.
package gviz

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"dynasty-backend/lib/restyutil"
	"dynasty-backend/lib/sheetutil"
	"dynasty-backend/lib/telemetry"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("dynasty.lib.gviz")

// CellMode controls which of a GViz cell's two values wins.
type CellMode int

const (
	// PreferFormatted takes the formatted value `f` first, falling
	// back to the raw `v`. The ledger and option sheets rely on the
	// formatted text (dates, codes).
	PreferFormatted CellMode = iota
	// PreferRaw takes `v` first. The history sheet wants raw numbers
	// so tenths-of-percent integers survive untouched.
	PreferRaw
)

type Client struct {
	http          *resty.Client
	spreadsheetId string
	cache         *snapshotCache
}

type Option func(*Client)

// WithCache stores fetched grids in a badger database so repeated CLI
// invocations don't hammer the sheet.
func WithCache(db *badger.DB) Option {
	return func(c *Client) {
		c.cache = &snapshotCache{db: db}
	}
}

func NewClient(spreadsheetId string, opts ...Option) *Client {
	c := &Client{
		http:          resty.New(),
		spreadsheetId: spreadsheetId,
	}
	restyutil.InstrumentClient(c.http, tracer)
	for _, o := range opts {
		o(c)
	}
	return c
}

var wrapperRegex = regexp.MustCompile(`(?s)setResponse\((.*)\);?\s*$`)

// the GViz endpoint returns javascript like
// google.visualization.Query.setResponse({...}); this digs the json
// payload out of the wrapper.
func unwrapResponse(body string) (gvizPayload, error) {
	m := wrapperRegex.FindStringSubmatch(body)
	if m == nil {
		return gvizPayload{}, fmt.Errorf("gviz: response is missing the setResponse(...) wrapper")
	}
	var payload gvizPayload
	err := json.Unmarshal([]byte(m[1]), &payload)
	if err != nil {
		return gvizPayload{}, fmt.Errorf("gviz: unwrap response: %w", err)
	}
	return payload, nil
}

type gvizPayload struct {
	Table struct {
		Cols []struct {
			Label string `json:"label"`
		} `json:"cols"`
		Rows []struct {
			C []*gvizCell `json:"c"`
		} `json:"rows"`
	} `json:"table"`
}

type gvizCell struct {
	V any     `json:"v"`
	F *string `json:"f"`
}

func (c *gvizCell) value(mode CellMode) string {
	if c == nil {
		return ""
	}
	raw := ""
	if c.V != nil {
		switch v := c.V.(type) {
		case string:
			raw = v
		case float64:
			raw = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			raw = strconv.FormatBool(v)
		default:
			raw = fmt.Sprint(v)
		}
	}

	if mode == PreferRaw {
		if raw != "" {
			return sheetutil.Clean(raw)
		}
		if c.F != nil {
			return sheetutil.Clean(*c.F)
		}
		return ""
	}

	if c.F != nil {
		return sheetutil.Clean(*c.F)
	}
	return sheetutil.Clean(raw)
}

// converts a payload to a rectangular grid padded to uniform width.
func payloadToGrid(payload gvizPayload, mode CellMode) [][]string {
	colCount := len(payload.Table.Cols)
	for _, r := range payload.Table.Rows {
		if len(r.C) > colCount {
			colCount = len(r.C)
		}
	}

	grid := make([][]string, len(payload.Table.Rows))
	for i, r := range payload.Table.Rows {
		row := make([]string, colCount)
		for j := 0; j < colCount && j < len(r.C); j++ {
			row[j] = r.C[j].value(mode)
		}
		grid[i] = row
	}
	return grid
}

// FillForward replaces blank cells with the last non-blank value seen
// to their left. Used on category rows where merged cells only carry
// their label in the first column.
func FillForward(row []string) []string {
	out := make([]string, len(row))
	last := ""
	for i, v := range row {
		v = sheetutil.Clean(v)
		if v != "" {
			last = v
		}
		out[i] = last
	}
	return out
}

// FetchGrid fetches one tab by gid and returns its cells with the
// formatted value preferred (see PreferFormatted).
func (c *Client) FetchGrid(ctx context.Context, gid string) ([][]string, error) {
	return c.fetch(ctx, gid, PreferFormatted)
}

// FetchGridRaw is FetchGrid with raw values preferred and the first
// row fill-forwarded, matching what the band-structured history sheet
// needs.
func (c *Client) FetchGridRaw(ctx context.Context, gid string) ([][]string, error) {
	grid, err := c.fetch(ctx, gid, PreferRaw)
	if err != nil {
		return nil, err
	}
	if len(grid) >= 1 {
		grid[0] = FillForward(grid[0])
	}
	return grid, nil
}

func (c *Client) fetch(ctx context.Context, gid string, mode CellMode) ([][]string, error) {
	ctx, span := tracer.Start(ctx, "fetch")
	defer span.End()
	span.SetAttributes(
		attribute.String("gid", gid),
		attribute.Int("cell_mode", int(mode)),
	)

	if c.cache != nil {
		grid, err := c.cache.get(ctx, cacheKey(gid, mode))
		if err == nil {
			return grid, nil
		}
		if err != errSnapshotNotFound {
			span.RecordError(err)
		}
	}

	url := fmt.Sprintf(
		"https://docs.google.com/spreadsheets/d/%s/gviz/tq?gid=%s&tqx=out:json",
		c.spreadsheetId, gid,
	)
	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch gviz tab")
		return nil, err
	}
	if res.StatusCode() >= 300 {
		err := fmt.Errorf("gviz: fetch gid %s: status %d", gid, res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	payload, err := unwrapResponse(res.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to unwrap response")
		return nil, err
	}

	grid := payloadToGrid(payload, mode)
	if c.cache != nil {
		err := c.cache.set(ctx, cacheKey(gid, mode), grid)
		if err != nil {
			span.RecordError(err)
		}
	}
	return grid, nil
}

// FetchCSV fetches one tab through the CSV export endpoint. Team
// sheets use this because their layout is free-form and the GViz
// column model mangles them.
func (c *Client) FetchCSV(ctx context.Context, gid string) ([][]string, error) {
	ctx, span := tracer.Start(ctx, "fetch_csv")
	defer span.End()
	span.SetAttributes(attribute.String("gid", gid))

	if c.cache != nil {
		grid, err := c.cache.get(ctx, cacheKey(gid, CellMode(-1)))
		if err == nil {
			return grid, nil
		}
		if err != errSnapshotNotFound {
			span.RecordError(err)
		}
	}

	url := fmt.Sprintf(
		"https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s",
		c.spreadsheetId, gid,
	)
	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch csv tab")
		return nil, err
	}
	if res.StatusCode() >= 300 {
		err := fmt.Errorf("gviz: fetch csv gid %s: status %d", gid, res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	grid := ParseCSV(res.String())
	if c.cache != nil {
		err := c.cache.set(ctx, cacheKey(gid, CellMode(-1)), grid)
		if err != nil {
			span.RecordError(err)
		}
	}
	return grid, nil
}

func cacheKey(gid string, mode CellMode) string {
	return "grid:" + gid + ":" + strconv.Itoa(int(mode))
}
