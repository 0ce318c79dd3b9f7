package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tableflip.dev/tripbook/pkg/trip"
)

func testClient(serverURL string) *Client {
	return &Client{
		APIKey:      "test-key",
		BaseURL:     serverURL,
		Model:       "gemini-2.5-flash",
		Destination: "Taipei, Taiwan",
		HTTPClient:  &http.Client{Timeout: 5 * time.Second},
	}
}

func modelReply(t *testing.T, payload interface{}) []byte {
	t.Helper()
	text, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	reply, err := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": string(text)}},
			}},
		},
	})
	if err != nil {
		t.Fatalf("marshal reply: %v", err)
	}
	return reply
}

func TestRequestDayPlan(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		w.Write(modelReply(t, map[string]interface{}{
			"date": "2025-12-16",
			"activities": []map[string]interface{}{
				{"time": "09:00", "location": "Longshan Temple", "description": "Morning visit", "type": "SITE", "costTWD": 0, "notes": "Arrive early"},
				{"time": "12:00", "location": "Din Tai Fung", "description": "Lunch", "type": "MEAL", "costTWD": 450, "notes": ""},
			},
			"dailyNote": "A classic first day.",
		}))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	plan := c.RequestDayPlan(context.Background(), "2025-12-16", "")
	if plan == nil {
		t.Fatalf("expected a plan")
	}
	if gotKey != "test-key" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}
	if plan.Date != "2025-12-16" {
		t.Fatalf("expected requested date, got %q", plan.Date)
	}
	if len(plan.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(plan.Activities))
	}
	for _, a := range plan.Activities {
		if a.ID == "" {
			t.Fatalf("expected every suggested activity to get an id")
		}
	}
	if plan.Activities[0].Type != trip.TypeSite {
		t.Fatalf("expected SITE, got %q", plan.Activities[0].Type)
	}
	if plan.DailyNote != "A classic first day." {
		t.Fatalf("unexpected note %q", plan.DailyNote)
	}
}

func TestRequestDayPlanNoCredential(t *testing.T) {
	c := &Client{Destination: "Taipei, Taiwan", HTTPClient: http.DefaultClient}
	if plan := c.RequestDayPlan(context.Background(), "2025-12-16", ""); plan != nil {
		t.Fatalf("expected absent plan without a credential, got %v", plan)
	}
}

func TestRequestDayPlanServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	if plan := c.RequestDayPlan(context.Background(), "2025-12-16", ""); plan != nil {
		t.Fatalf("expected absent plan on server error, got %v", plan)
	}
}

func TestRequestDayPlanGarbledReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply, _ := json.Marshal(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "sorry, no json today"}},
				}},
			},
		})
		w.Write(reply)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	if plan := c.RequestDayPlan(context.Background(), "2025-12-16", ""); plan != nil {
		t.Fatalf("expected absent plan for unparsable reply, got %v", plan)
	}
}

func TestRequestWeatherAdviceNoCredential(t *testing.T) {
	c := &Client{Destination: "Taipei, Taiwan", HTTPClient: http.DefaultClient}
	advice := c.RequestWeatherAdvice(context.Background(), 25.0330, 121.5654)
	if len(advice.Forecast) != 3 {
		t.Fatalf("expected 3 offline entries, got %d", len(advice.Forecast))
	}
	if advice.UmbrellaNeeded {
		t.Fatalf("offline advice must not claim rain")
	}
	if advice.GeneralOutlook != "Offline Mode" {
		t.Fatalf("expected labeled offline payload, got %q", advice.GeneralOutlook)
	}
}

func TestRequestWeatherAdviceFallsBackToSeasonal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream sad", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	advice := c.RequestWeatherAdvice(context.Background(), 25.0330, 121.5654)
	if len(advice.Forecast) != 3 {
		t.Fatalf("expected 3 seasonal entries, got %d", len(advice.Forecast))
	}
	if !advice.UmbrellaNeeded {
		t.Fatalf("expected the seasonal guess to advise an umbrella")
	}
}

func TestRequestWeatherAdviceWrongForecastLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply(t, map[string]interface{}{
			"forecast":       []map[string]string{{"dayName": "Tomorrow", "temp": "20°C", "condition": "Sunny", "rainChance": "0%"}},
			"clothingAdvice": "Shorts.",
			"umbrellaNeeded": false,
			"generalOutlook": "Nice",
		}))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	advice := c.RequestWeatherAdvice(context.Background(), 25.0330, 121.5654)
	if advice.GeneralOutlook != "Typical humid winter weather." {
		t.Fatalf("expected seasonal fallback for short forecast, got %q", advice.GeneralOutlook)
	}
}

func TestRequestWeatherAdvice(t *testing.T) {
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write(modelReply(t, map[string]interface{}{
			"forecast": []map[string]string{
				{"dayName": "Tomorrow", "temp": "18-22°C", "condition": "Cloudy", "rainChance": "30%"},
				{"dayName": "Mon", "temp": "17-20°C", "condition": "Rain", "rainChance": "70%"},
				{"dayName": "Tue", "temp": "19-23°C", "condition": "Sunny", "rainChance": "10%"},
			},
			"clothingAdvice": "Layers.",
			"umbrellaNeeded": true,
			"generalOutlook": "Unsettled.",
		}))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	advice := c.RequestWeatherAdvice(context.Background(), 25.0330, 121.5654)
	if advice.ClothingAdvice != "Layers." {
		t.Fatalf("unexpected advice %q", advice.ClothingAdvice)
	}
	if len(gotBody.Tools) != 1 || gotBody.Tools[0].GoogleSearch == nil {
		t.Fatalf("expected the google_search tool on weather requests, got %v", gotBody.Tools)
	}
}
