package urgency

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goldencrumb/bakerybackend/lib/mycontext"
	"github.com/goldencrumb/bakerybackend/lib/myhttp"
	"github.com/goldencrumb/bakerybackend/services/order/orderevents"
)

type alertsResponse struct {
	Alerts    []Alert
	Dismissed bool
}

func (m *Monitor) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/urgency", m.alertsPage()).Methods("GET")
	router.HandleFunc("/api/urgency/dismiss", m.dismissPage()).Methods("PUT")

	// Listen for order events
	router.HandleFunc("/api/urgency/event", m.eventPage()).Methods("POST")

	err := m.Subscribe(c)
	if err != nil {
		return err
	}

	return nil
}

func (m *Monitor) alertsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(m.logger)

		alerts, dismissed := m.Alerts()

		errorWriter.Write(c, w, http.StatusOK, alertsResponse{
			Alerts:    alerts,
			Dismissed: dismissed,
		})
	}
}

func (m *Monitor) dismissPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(m.logger)

		m.Dismiss()

		errorWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}

func (m *Monitor) eventPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(m.logger)

		err := orderevents.DispatchEvent(c, r.Body, m)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}
