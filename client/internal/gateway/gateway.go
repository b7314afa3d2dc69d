// Package gateway builds the single HTTP transport every SDK operation goes
// through. It owns no state of its own beyond credential attachment: a
// request hook adds the bearer credential when one is stored, and a response
// hook tears the session down on any 401, regardless of which operation
// issued the request.
package gateway

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/credstore"
)

const defaultTimeout = 30 * time.Second

// New constructs the shared transport. onUnauthorized runs after the
// persisted credential has been erased; it is responsible for resetting
// session state and navigating to login.
func New(baseURL string, store credstore.Store, onUnauthorized func()) *resty.Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(defaultTimeout)

	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if tok, ok := store.Load(); ok {
			req.SetHeader("Authorization", "Bearer "+tok)
		}
		return nil
	})

	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		requestsTotal.WithLabelValues(resp.Request.Method, statusClass(resp.StatusCode())).Inc()
		if resp.StatusCode() == http.StatusUnauthorized {
			unauthorizedTotal.Inc()
			log.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Msg("unauthorized response, clearing session credential")
			store.Clear()
			if onUnauthorized != nil {
				onUnauthorized()
			}
		}
		return nil
	})

	return rc
}

func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "other"
	}
	return strconv.Itoa(code/100) + "xx"
}
