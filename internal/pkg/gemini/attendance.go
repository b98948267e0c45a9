package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/genba-cloud/genba-attendance/internal/domain/attendance"
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/google/uuid"
)

// generatedRecord is the shape the day generator asks the model to emit.
type generatedRecord struct {
	WorkerID     string `json:"workerId"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutTime string `json:"checkOutTime"`
}

// rosterEntry is the worker roster summary included in prompts.
type rosterEntry struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// GenerateDailyRecords asks the model for one day of plausible check-in/out
// pairs for the roster at the given site. A model response that is not valid
// JSON, or does not match the schema, yields an empty slice rather than an
// error; transport and API failures are returned to the caller.
func (c *Client) GenerateDailyRecords(ctx context.Context, workers []roster.Worker, site roster.Site, date string) ([]attendance.Record, error) {
	entries := make([]rosterEntry, 0, len(workers))
	for _, w := range workers {
		entries = append(entries, rosterEntry{ID: w.ID, Role: w.Occupation})
	}
	rosterJSON, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode roster: %w", err)
	}

	prompt := fmt.Sprintf(`Generate realistic construction site attendance records for the date %s.
Site: %s.
Workers available: %s.

Rules:
- Randomly select about 80%% of workers to be present.
- Start times should be around 07:30 to 08:30.
- End times should be around 17:00 to 18:00.
- Create a JSON array of records.
- Format dates as ISO strings.`, date, site.Name, rosterJSON)

	genCfg := &generationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &schema{
			Type: "ARRAY",
			Items: &schema{
				Type: "OBJECT",
				Properties: map[string]*schema{
					"workerId":     {Type: "STRING"},
					"checkInTime":  {Type: "STRING"},
					"checkOutTime": {Type: "STRING"},
				},
				Required: []string{"workerId", "checkInTime", "checkOutTime"},
			},
		},
	}

	text, err := c.generate(ctx, prompt, genCfg)
	if err != nil {
		return nil, err
	}

	var raw []generatedRecord
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		// Malformed model output degrades to an empty day.
		return []attendance.Record{}, nil
	}

	records := make([]attendance.Record, 0, len(raw))
	for _, r := range raw {
		records = append(records, attendance.Record{
			ID:           "gen-" + uuid.NewString(),
			WorkerID:     r.WorkerID,
			SiteID:       site.ID,
			Date:         date,
			CheckInTime:  r.CheckInTime,
			CheckOutTime: r.CheckOutTime,
			Status:       attendance.StatusCheckedOut,
		})
	}
	return records, nil
}

// ReportEntry is one enriched attendance row handed to the productivity
// report prompt.
type ReportEntry struct {
	Date  string `json:"date"`
	Role  string `json:"role"`
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// GenerateProductivityReport asks the model for a Japanese Markdown summary
// of the given attendance sample.
func (c *Client) GenerateProductivityReport(ctx context.Context, entries []ReportEntry) (string, error) {
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("failed to encode report data: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are a veteran construction site manager. Analyze the following attendance data.\n")
	fmt.Fprintf(&b, "Data: %s (truncated for brevity)\n\n", data)
	b.WriteString(`Please provide a concise summary in Japanese (Markdown format) covering:
1. Overall attendance trends.
2. Observations on work hours.
3. Resource distribution by role.
4. A safety or efficiency tip based on the data.

Keep the tone professional but encouraging.`)

	return c.generate(ctx, b.String(), nil)
}
