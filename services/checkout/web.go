package checkout

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goldencrumb/bakerybackend/lib/mycontext"
	"github.com/goldencrumb/bakerybackend/lib/myerrors"
	"github.com/goldencrumb/bakerybackend/lib/myhttp"
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/checkout/{cartUID}", s.startCheckoutPage()).Methods("POST")
	router.HandleFunc("/api/checkout/{cartUID}", s.getSessionPage()).Methods("GET")
	router.HandleFunc("/api/checkout/{cartUID}/form", s.updateFormPage()).Methods("PUT")
	router.HandleFunc("/api/checkout/{cartUID}/step/{step}", s.goToStepPage()).Methods("PUT")
	router.HandleFunc("/api/checkout/{cartUID}/submit", s.submitOrderPage()).Methods("POST")
}

func (s *service) startCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		session, err := s.StartCheckout(c, cartUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, session)
	}
}

func (s *service) getSessionPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		session, found, err := s.GetSession(c, cartUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
		if !found {
			errorWriter.WriteError(c, w, 2, myerrors.NewNotFoundError(fmt.Errorf("no checkout session for cart %s", cartUID)))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, session)
	}
}

func (s *service) updateFormPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		form, err := formFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		session, err := s.UpdateForm(c, cartUID, form)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, session)
	}
}

func (s *service) goToStepPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]
		step := CheckoutStep(mux.Vars(r)["step"])

		session, err := s.GoToStep(c, cartUID, step)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, session)
	}
}

func (s *service) submitOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		created, err := s.SubmitOrder(c, cartUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, created)
	}
}
