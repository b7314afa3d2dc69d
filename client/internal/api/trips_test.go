package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/errs"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/types"
)

func TestListTrips_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/trips" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
            {"id":"t1","destination":"Paris","startDate":"2025-05-01","endDate":"2025-05-04","status":"planning","budget":1500,"travelers":2,"theme":"food"},
            {"id":"t2","destination":"Rome","startDate":"2025-06-01","endDate":"2025-06-07","status":"booked","budget":2200,"travelers":1,"theme":"cultural"}
        ]`))
	}))
	defer srv.Close()

	trips, err := ListTrips(context.Background(), testClient(srv.URL))
	if err != nil {
		t.Fatalf("ListTrips returned error: %v", err)
	}
	if len(trips) != 2 || trips[0].ID != "t1" || trips[1].Destination != "Rome" {
		t.Fatalf("unexpected trips %+v", trips)
	}
}

func TestListTrips_Empty(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	trips, err := ListTrips(context.Background(), testClient(srv.URL))
	if err != nil || len(trips) != 0 {
		t.Fatalf("unexpected: trips=%+v err=%v", trips, err)
	}
}

func TestCreateTrip_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/trips" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		_ = json.Unmarshal(body, &req)
		if _, ok := req["id"]; ok {
			t.Error("create body must not carry server-assigned id")
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"t9","destination":"Lisbon","startDate":"2025-09-01","endDate":"2025-09-05","status":"planning","budget":900,"travelers":2,"theme":"beach"}`))
	}))
	defer srv.Close()

	trip, err := CreateTrip(context.Background(), testClient(srv.URL), types.CreateTripRequest{
		Destination: "Lisbon", StartDate: "2025-09-01", EndDate: "2025-09-05", Budget: 900, Travelers: 2, Theme: "beach",
	})
	if err != nil {
		t.Fatalf("CreateTrip returned error: %v", err)
	}
	if trip.ID != "t9" || trip.Status != types.TripStatusPlanning {
		t.Fatalf("unexpected trip %+v", trip)
	}
}

func TestCreateTrip_MissingDestination(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for invalid input")
	}))
	defer srv.Close()

	_, err := CreateTrip(context.Background(), testClient(srv.URL), types.CreateTripRequest{})
	if !errs.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateTrip_PartialBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/trips/t1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		_ = json.Unmarshal(body, &req)
		if len(req) != 1 {
			t.Errorf("partial update must carry only changed fields, got %v", req)
		}
		if req["budget"] != float64(2000) {
			t.Errorf("budget %v", req["budget"])
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"t1","destination":"Paris","budget":2000,"status":"planning"}`))
	}))
	defer srv.Close()

	budget := 2000.0
	trip, err := UpdateTrip(context.Background(), testClient(srv.URL), "t1", types.UpdateTripRequest{Budget: &budget})
	if err != nil {
		t.Fatalf("UpdateTrip returned error: %v", err)
	}
	if trip.Budget != 2000 {
		t.Fatalf("unexpected trip %+v", trip)
	}
}

func TestDeleteTrip(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/trips/t1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := DeleteTrip(context.Background(), testClient(srv.URL), "t1"); err != nil {
		t.Fatalf("DeleteTrip returned error: %v", err)
	}
}

func TestTrips_ErrorStatuses(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rc := testClient(srv.URL)
	if _, err := ListTrips(context.Background(), rc); !errs.IsServer(err) {
		t.Fatalf("ListTrips: expected server error, got %v", err)
	}
	if _, err := CreateTrip(context.Background(), rc, types.CreateTripRequest{Destination: "x"}); !errs.IsServer(err) {
		t.Fatalf("CreateTrip: expected server error, got %v", err)
	}
	if err := DeleteTrip(context.Background(), rc, "t1"); !errs.IsServer(err) {
		t.Fatalf("DeleteTrip: expected server error, got %v", err)
	}
}
